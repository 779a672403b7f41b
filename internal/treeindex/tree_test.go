package treeindex

import (
	"testing"

	"github.com/cacack/wavematch/internal/domain"
)

func sampleTree() (*Tree, []domain.ValidationIssue) {
	persons := map[string]*domain.Person{
		"sH": {ID: "sH", FirstName: "John", Gender: domain.GenderMale},
		"sW": {ID: "sW", FirstName: "Mary", Gender: domain.GenderFemale},
		"sC": {ID: "sC", FirstName: "Peter", BirthDate: &domain.DateInfo{Year: intPtr(1975)}},
	}
	families := map[string]*domain.Family{
		"F1": {ID: "F1", HusbandID: "sH", WifeID: "sW", ChildrenIDs: []string{"sC"}},
	}
	return Build(persons, families)
}

func intPtr(i int) *int { return &i }

func TestBuild_FamiliesAsSpouseAndChild(t *testing.T) {
	tree, issues := sampleTree()
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %+v", issues)
	}

	spouseFams := tree.FamiliesAsSpouse("sH")
	if len(spouseFams) != 1 || spouseFams[0].ID != "F1" {
		t.Errorf("FamiliesAsSpouse(sH) = %+v", spouseFams)
	}

	childFams := tree.FamiliesAsChild("sC")
	if len(childFams) != 1 || childFams[0].ID != "F1" {
		t.Errorf("FamiliesAsChild(sC) = %+v", childFams)
	}
}

func TestBuild_DanglingReferenceRecordsIssue(t *testing.T) {
	persons := map[string]*domain.Person{
		"sH": {ID: "sH"},
	}
	families := map[string]*domain.Family{
		"F1": {ID: "F1", HusbandID: "sH", WifeID: "missing"},
	}

	tree, issues := Build(persons, families)
	if len(issues) != 1 {
		t.Fatalf("expected one dangling-reference issue, got %+v", issues)
	}
	if issues[0].Kind != domain.IssueFamilyInconsistency || issues[0].Severity != domain.SeverityMedium {
		t.Errorf("unexpected issue: %+v", issues[0])
	}

	if fams := tree.FamiliesAsSpouse("missing"); len(fams) != 0 {
		t.Errorf("expected no edge for dangling reference, got %+v", fams)
	}
}

func TestImmediateRelatives_StableOrderAndDedup(t *testing.T) {
	tree, _ := sampleTree()

	relatives := tree.ImmediateRelatives("sH")
	if len(relatives) != 2 {
		t.Fatalf("expected 2 relatives, got %+v", relatives)
	}
	// spouse (rank 0) before child (rank 1)
	if relatives[0].PersonID != "sW" || relatives[0].Relation != domain.RelationSpouse {
		t.Errorf("relatives[0] = %+v, want spouse sW", relatives[0])
	}
	if relatives[1].PersonID != "sC" || relatives[1].Relation != domain.RelationChild {
		t.Errorf("relatives[1] = %+v, want child sC", relatives[1])
	}

	childRelatives := tree.ImmediateRelatives("sC")
	if len(childRelatives) != 2 {
		t.Fatalf("expected 2 parent relatives for sC, got %+v", childRelatives)
	}
	for _, r := range childRelatives {
		if r.Relation != domain.RelationParent {
			t.Errorf("expected parent relation, got %+v", r)
		}
	}
}

func TestPersonsByBirthYearAndSurnameBucket(t *testing.T) {
	tree, _ := sampleTree()

	if ids := tree.PersonsByBirthYear(1975); len(ids) != 1 || ids[0] != "sC" {
		t.Errorf("PersonsByBirthYear(1975) = %v", ids)
	}
	if ids := tree.PersonsByBirthYear(1999); len(ids) != 0 {
		t.Errorf("PersonsByBirthYear(1999) = %v, want empty", ids)
	}
}

func TestSearchByApproximateSurname(t *testing.T) {
	persons := map[string]*domain.Person{
		"p1": {ID: "p1", LastName: "Ivanov"},
		"p2": {ID: "p2", LastName: "Petrov"},
	}
	tree, _ := Build(persons, map[string]*domain.Family{})

	results := tree.SearchByApproximateSurname("ivnov", 5)
	if len(results) == 0 || results[0] != "ivanov" {
		t.Errorf("SearchByApproximateSurname(ivnov) = %v, want [ivanov, ...]", results)
	}
}
