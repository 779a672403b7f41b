package domain

import "testing"

func intPtr(i int) *int { return &i }

func TestFamily_Validate(t *testing.T) {
	tests := []struct {
		name    string
		family  *Family
		wantErr bool
	}{
		{
			name:   "valid family with both spouses",
			family: &Family{ID: "f1", HusbandID: "h1", WifeID: "w1"},
		},
		{
			name:   "valid single-parent family",
			family: &Family{ID: "f1", HusbandID: "h1"},
		},
		{
			name:   "no id",
			family: &Family{HusbandID: "h1"},
			wantErr: true,
		},
		{
			name:    "same husband and wife id",
			family:  &Family{ID: "f1", HusbandID: "p1", WifeID: "p1"},
			wantErr: true,
		},
		{
			name:    "invalid marriage date",
			family:  &Family{ID: "f1", HusbandID: "h1", MarriageDate: &DateInfo{Year: intPtr(1850), Month: intPtr(13)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.family.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFamily_HasSpouse(t *testing.T) {
	f := &Family{ID: "f1", HusbandID: "h1", WifeID: "w1"}

	if !f.HasSpouse("h1") {
		t.Error("expected h1 to be a spouse")
	}
	if !f.HasSpouse("w1") {
		t.Error("expected w1 to be a spouse")
	}
	if f.HasSpouse("c1") {
		t.Error("expected c1 not to be a spouse")
	}
}

func TestFamily_HasChild_ChildIndex(t *testing.T) {
	f := &Family{ID: "f1", ChildrenIDs: []string{"c1", "c2", "c3"}}

	if !f.HasChild("c2") {
		t.Error("expected c2 to be a child")
	}
	if f.HasChild("c9") {
		t.Error("expected c9 not to be a child")
	}
	if got := f.ChildIndex("c3"); got != 2 {
		t.Errorf("ChildIndex(c3) = %d, want 2", got)
	}
	if got := f.ChildIndex("c9"); got != -1 {
		t.Errorf("ChildIndex(c9) = %d, want -1", got)
	}
}
