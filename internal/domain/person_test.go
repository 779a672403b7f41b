package domain

import "testing"

func TestPerson_Validate(t *testing.T) {
	tests := []struct {
		name    string
		person  *Person
		wantErr bool
	}{
		{
			name:   "valid person",
			person: &Person{ID: "p1", FirstName: "John", LastName: "Doe"},
		},
		{
			name:    "empty id",
			person:  &Person{FirstName: "John", LastName: "Doe"},
			wantErr: true,
		},
		{
			name:   "empty surname is fine (historical records)",
			person: &Person{ID: "p1", FirstName: "John"},
		},
		{
			name:    "invalid gender",
			person:  &Person{ID: "p1", FirstName: "John", Gender: "invalid"},
			wantErr: true,
		},
		{
			name:   "valid male gender",
			person: &Person{ID: "p1", FirstName: "John", Gender: GenderMale},
		},
		{
			name: "invalid birth date",
			person: func() *Person {
				birth := DateInfo{Year: intPtr(1850), Month: intPtr(13)}
				return &Person{ID: "p1", FirstName: "John", BirthDate: &birth}
			}(),
			wantErr: true,
		},
		{
			name: "invalid between date missing year_end",
			person: &Person{ID: "p1", FirstName: "John", BirthDate: &DateInfo{
				Year: intPtr(1850), Qualifier: DateBetween,
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.person.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPerson_FullName(t *testing.T) {
	p := &Person{FirstName: "John", LastName: "Doe"}
	if got := p.FullName(); got != "John Doe" {
		t.Errorf("FullName() = %v, want John Doe", got)
	}

	single := &Person{FirstName: "Prince"}
	if got := single.FullName(); got != "Prince" {
		t.Errorf("FullName() = %v, want Prince", got)
	}
}

func TestIsHusbandWifeRoleConsistent(t *testing.T) {
	if !IsHusbandRoleConsistent(GenderMale) || !IsHusbandRoleConsistent(GenderUnknown) {
		t.Error("male/unknown should be consistent with husband role")
	}
	if IsHusbandRoleConsistent(GenderFemale) {
		t.Error("female should not be consistent with husband role")
	}
	if !IsWifeRoleConsistent(GenderFemale) || !IsWifeRoleConsistent(GenderUnknown) {
		t.Error("female/unknown should be consistent with wife role")
	}
	if IsWifeRoleConsistent(GenderMale) {
		t.Error("male should not be consistent with wife role")
	}
}
