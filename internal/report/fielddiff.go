package report

import "github.com/cacack/wavematch/internal/domain"

// CompareFields implements §4.8's "Updates" derivation for one mapped pair:
// a list of FieldDiff built the same way the teacher's resolveFields builds
// its field table, except every outcome is recorded as a diff rather than
// silently merged, and the destination side is never overwritten here — the
// caller decides whether to apply a proposal.
func CompareFields(source, destination *domain.Person) []FieldDiff {
	var diffs []FieldDiff

	stringFields := []struct {
		name string
		src  string
		dst  string
	}{
		{"first_name", source.FirstName, destination.FirstName},
		{"middle_name", source.MiddleName, destination.MiddleName},
		{"last_name", source.LastName, destination.LastName},
		{"maiden_name", source.MaidenName, destination.MaidenName},
		{"nickname", source.Nickname, destination.Nickname},
		{"suffix", source.Suffix, destination.Suffix},
		{"birth_place", source.BirthPlace, destination.BirthPlace},
		{"death_place", source.DeathPlace, destination.DeathPlace},
		{"burial_place", source.BurialPlace, destination.BurialPlace},
	}
	for _, f := range stringFields {
		if d, ok := compareStringField(f.name, f.src, f.dst); ok {
			diffs = append(diffs, d)
		}
	}

	dateFields := []struct {
		name string
		src  *domain.DateInfo
		dst  *domain.DateInfo
	}{
		{"birth_date", source.BirthDate, destination.BirthDate},
		{"death_date", source.DeathDate, destination.DeathDate},
		{"burial_date", source.BurialDate, destination.BurialDate},
	}
	for _, f := range dateFields {
		if d, ok := compareDateField(f.name, f.src, f.dst); ok {
			diffs = append(diffs, d)
		}
	}

	if d, ok := comparePhotos(source.PhotoURLs, destination.PhotoURLs); ok {
		diffs = append(diffs, d)
	}

	return diffs
}

func compareStringField(name, src, dst string) (FieldDiff, bool) {
	if dst == "" && src != "" {
		return FieldDiff{FieldName: name, SourceValue: src, DestinationValue: dst, Action: ActionAdd}, true
	}
	return FieldDiff{}, false
}

// compareDateField detects both "add" (destination has no date at all) and
// "update" (destination's date is present but lower-precision than the
// source's, e.g. year-only versus full day precision).
func compareDateField(name string, src, dst *domain.DateInfo) (FieldDiff, bool) {
	if src == nil || src.IsEmpty() {
		return FieldDiff{}, false
	}
	if dst == nil || dst.IsEmpty() {
		return FieldDiff{FieldName: name, SourceValue: src.Format(), DestinationValue: "", Action: ActionAdd}, true
	}
	if precisionRank(src.Precision) > precisionRank(dst.Precision) {
		return FieldDiff{FieldName: name, SourceValue: src.Format(), DestinationValue: dst.Format(), Action: ActionUpdate}, true
	}
	return FieldDiff{}, false
}

func precisionRank(p domain.DatePrecision) int {
	switch p {
	case domain.PrecisionDay:
		return 2
	case domain.PrecisionMonth:
		return 1
	case domain.PrecisionYear:
		return 0
	default:
		return -1
	}
}

// comparePhotos finds every source photo url absent from the
// destination's set. One add_photo diff covers every missing url: the diff
// carries the full comma-joined list of urls to add, the way a reviewer
// would want to see them at once rather than one diff per url.
func comparePhotos(srcURLs, dstURLs []string) (FieldDiff, bool) {
	if len(srcURLs) == 0 {
		return FieldDiff{}, false
	}
	dstSet := make(map[string]bool, len(dstURLs))
	for _, u := range dstURLs {
		dstSet[u] = true
	}
	var missing []string
	for _, u := range srcURLs {
		if !dstSet[u] {
			missing = append(missing, u)
		}
	}
	if len(missing) == 0 {
		return FieldDiff{}, false
	}
	return FieldDiff{
		FieldName:        "photo_urls",
		SourceValue:      joinComma(missing),
		DestinationValue: joinComma(dstURLs),
		Action:           ActionAddPhoto,
	}, true
}

func joinComma(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}
