package fuzzy

// nameVariantGroups groups given names considered equivalent across
// languages and eras, per §4.2's "name-variants dictionary" rule
// (Ivan ≡ John ≡ Johann ...). Every entry is pre-normalized (lowercase, no
// diacritics/punctuation) since group membership is always tested against
// NormalizeName output.
var nameVariantGroups = [][]string{
	{"ivan", "john", "johann", "johannes", "jean", "giovanni", "juan", "sean", "ian", "hans"},
	{"mary", "maria", "marie", "miriam", "maryam", "mariya", "maryia"},
	{"peter", "petr", "pyotr", "piotr", "pietro", "pedro", "pierre"},
	{"paul", "pavel", "paulo", "pawel", "paulus"},
	{"joseph", "josef", "josip", "giuseppe", "jose", "yosef"},
	{"elizabeth", "elisabeth", "elisaveta", "jelizaveta", "isabel", "isabella", "elsie", "liz", "beth"},
	{"catherine", "katherine", "ekaterina", "katarzyna", "katarina", "katya", "kate", "karin"},
	{"alexander", "alexandr", "aleksandr", "alessandro", "alejandro", "alex", "sasha"},
	{"michael", "mikhail", "miguel", "michele", "michal", "misha"},
	{"george", "georgi", "georgiy", "giorgio", "jorge", "yuri", "jurij"},
	{"william", "wilhelm", "guillermo", "guillaume", "vasily", "vasil"},
	{"anna", "anne", "anya", "hannah", "ann"},
	{"thomas", "tomas", "tomasz", "foma"},
	{"nicholas", "nikolai", "nikolay", "nicolas", "nikola", "kolya"},
	{"stephen", "stephan", "stepan", "stefan", "stiven"},
}

var nameVariantIndex = buildNameVariantIndex()

func buildNameVariantIndex() map[string]int {
	idx := make(map[string]int)
	for groupID, group := range nameVariantGroups {
		for _, name := range group {
			idx[name] = groupID
		}
	}
	return idx
}

// AreNameVariants reports whether a and b (already run through
// NormalizeName) belong to the same variant group.
func AreNameVariants(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ga, ok1 := nameVariantIndex[a]
	gb, ok2 := nameVariantIndex[b]
	return ok1 && ok2 && ga == gb
}
