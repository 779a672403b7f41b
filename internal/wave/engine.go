package wave

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/familymatch"
	"github.com/cacack/wavematch/internal/membermatch"
	"github.com/cacack/wavematch/internal/treeindex"
	"github.com/cacack/wavematch/internal/validator"
)

// Run executes the Wave Engine (§4.5): BFS propagation from the anchor
// pair, producing a Result. It fails only on the one fatal precondition,
// ErrAnchorMissing.
func Run(srcTree, dstTree *treeindex.Tree, anchorSourceID, anchorDestinationID string, opts Options) (*Result, error) {
	if _, ok := srcTree.Persons[anchorSourceID]; !ok {
		return nil, fmt.Errorf("%w: source anchor %q not found", ErrAnchorMissing, anchorSourceID)
	}
	if _, ok := dstTree.Persons[anchorDestinationID]; !ok {
		return nil, fmt.Errorf("%w: destination anchor %q not found", ErrAnchorMissing, anchorDestinationID)
	}

	runID := uuid.New()
	mappings := domain.NewMappingSet()
	_ = mappings.Add(domain.PersonMapping{
		SourceID:      anchorSourceID,
		DestinationID: anchorDestinationID,
		MatchScore:    100,
		Level:         0,
		FoundVia:      domain.FoundViaAnchor,
		FoundAt:       time.Now(),
	})

	processed := map[string]bool{anchorSourceID: true}
	queue := &fifoQueue{}
	queue.push(anchorSourceID, 0)

	levelStats := map[int]*LevelStatistics{}
	var detailedLog []DetailedLogEntry

	currentLevel := -1
	var levelStart time.Time

	for !queue.empty() {
		item := queue.pop()

		if item.Level != currentLevel {
			if currentLevel >= 0 {
				levelStats[currentLevel].Duration = time.Since(levelStart)
			}
			currentLevel = item.Level
			levelStart = time.Now()
		}

		ls := levelStatsFor(levelStats, item.Level)
		ls.PersonsProcessed++

		if item.Level >= opts.MaxLevel {
			continue
		}

		spouseLog, spouseMappings, spouseFamilies := processFamilies(
			srcTree.FamiliesAsSpouse(item.SourceID), domain.FoundViaSpouse, domain.FoundViaChild,
			item, srcTree, dstTree, mappings, opts, queue, processed, runID)
		childLog, childMappings, childFamilies := processFamilies(
			srcTree.FamiliesAsChild(item.SourceID), domain.FoundViaParent, domain.FoundViaSibling,
			item, srcTree, dstTree, mappings, opts, queue, processed, runID)

		detailedLog = append(detailedLog, spouseLog...)
		detailedLog = append(detailedLog, childLog...)
		ls.NewMappings += spouseMappings + childMappings
		ls.FamiliesProcessed += spouseFamilies + childFamilies
	}
	if currentLevel >= 0 {
		levelStats[currentLevel].Duration = time.Since(levelStart)
	}

	mappings.SortIssues()

	result := &Result{
		AnchorSourceID:       anchorSourceID,
		AnchorDestinationID:  anchorDestinationID,
		Options:              opts,
		Mappings:             mappings.All(),
		UnmatchedSource:      unmatchedIDs(srcTree.Persons, mappings.SourceMapped),
		UnmatchedDestination: unmatchedIDs(dstTree.Persons, mappings.DestinationMapped),
		ValidationIssues:     mappings.Issues,
		StatisticsByLevel:    sortedLevelStats(levelStats),
		DetailedLog:          detailedLog,
	}
	result.Statistics = aggregate(result.StatisticsByLevel)

	return result, nil
}

func levelStatsFor(levelStats map[int]*LevelStatistics, level int) *LevelStatistics {
	ls, ok := levelStats[level]
	if !ok {
		ls = &LevelStatistics{Level: level}
		levelStats[level] = ls
	}
	return ls
}

// processFamilies evaluates every family in families (either the families
// where item.SourceID is a spouse, or where it is a child), matching each
// against candidate destination families and proposing new mappings.
// spouseVia/childVia give the domain.FoundVia each role's proposals are
// tagged with, which differs depending on whether item.SourceID's relation
// to this family is as a spouse (co-spouse found via spouse, children
// found via child) or as a child (co-parents found via parent, siblings
// found via sibling).
func processFamilies(
	families []*domain.Family,
	spouseVia, childVia domain.FoundVia,
	item queueItem,
	srcTree, dstTree *treeindex.Tree,
	mappings *domain.MappingSet,
	opts Options,
	queue *fifoQueue,
	processed map[string]bool,
	runID uuid.UUID,
) (logEntries []DetailedLogEntry, newMappings int, familiesProcessed int) {
	for _, srcFamily := range families {
		candidates := candidateDestinationFamilies(srcFamily, dstTree, mappings)
		if len(candidates) == 0 {
			continue
		}

		result := familymatch.Match(srcFamily, candidates, srcTree, dstTree, mappings)
		familiesProcessed++
		logEntries = append(logEntries, buildLogEntry(runID, item.Level, srcFamily.ID, result))

		if !result.Matched {
			continue
		}
		dstFamily := dstTree.Families[result.ChosenFamilyID]

		spouseProposals := membermatch.MatchSpouses(srcFamily, dstFamily, srcTree.Persons, dstTree.Persons, mappings, opts.ThresholdStrategy, opts.BaseThreshold)
		childProposals := membermatch.MatchChildren(
			unmappedMembers(srcFamily.ChildrenIDs, mappings.SourceMapped),
			unmappedMembers(dstFamily.ChildrenIDs, mappings.DestinationMapped),
			srcTree.Persons, dstTree.Persons, opts.ThresholdStrategy, opts.BaseThreshold)

		accepted := 0
		for _, p := range spouseProposals {
			if submitProposal(p, spouseVia, srcFamily.ID, item, srcTree, dstTree, mappings, queue, processed) {
				accepted++
			}
		}
		for _, p := range childProposals {
			if submitProposal(p, childVia, srcFamily.ID, item, srcTree, dstTree, mappings, queue, processed) {
				accepted++
			}
		}
		newMappings += accepted

		if accepted > 0 {
			enqueueUnmatchedMembers(srcFamily, item.Level, mappings, queue, processed)
		}
	}
	return logEntries, newMappings, familiesProcessed
}

// candidateDestinationFamilies gathers destination families that might
// correspond to srcFamily, by unioning the role-consistent destination
// families of every already-mapped member of srcFamily: a mapped spouse
// contributes the destination families where their image is a spouse, a
// mapped child contributes the destination families where their image is
// a child. This covers both the normal case (the person that triggered
// this family's exploration is itself mapped) and the unmapped-exploration
// case (some other member of the family is mapped, §4.5 step 4).
func candidateDestinationFamilies(srcFamily *domain.Family, dstTree *treeindex.Tree, mappings *domain.MappingSet) []*domain.Family {
	seen := map[string]bool{}
	var out []*domain.Family

	add := func(families []*domain.Family) {
		for _, f := range families {
			if !seen[f.ID] {
				seen[f.ID] = true
				out = append(out, f)
			}
		}
	}

	if srcFamily.HusbandID != "" {
		if dstID, ok := mappings.DestinationOf(srcFamily.HusbandID); ok {
			add(dstTree.FamiliesAsSpouse(dstID))
		}
	}
	if srcFamily.WifeID != "" {
		if dstID, ok := mappings.DestinationOf(srcFamily.WifeID); ok {
			add(dstTree.FamiliesAsSpouse(dstID))
		}
	}
	for _, childID := range srcFamily.ChildrenIDs {
		if dstID, ok := mappings.DestinationOf(childID); ok {
			add(dstTree.FamiliesAsChild(dstID))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func unmappedMembers(ids []string, mapped func(string) bool) []string {
	var out []string
	for _, id := range ids {
		if !mapped(id) {
			out = append(out, id)
		}
	}
	return out
}

func submitProposal(
	p membermatch.Proposal,
	via domain.FoundVia,
	srcFamilyID string,
	item queueItem,
	srcTree, dstTree *treeindex.Tree,
	mappings *domain.MappingSet,
	queue *fifoQueue,
	processed map[string]bool,
) bool {
	sp, ok := srcTree.Persons[p.SourceID]
	if !ok {
		return false
	}
	dp, ok := dstTree.Persons[p.DestinationID]
	if !ok {
		return false
	}

	cm := validator.CandidateMapping{
		Source:                 sp,
		Destination:            dp,
		MatchScore:             p.MatchScore,
		SourceMappedFatherDest: mappedFatherDestination(sp, mappings),
	}
	decision := validator.Validate(cm, mappings)
	if !decision.Accepted {
		return false
	}

	err := mappings.Add(domain.PersonMapping{
		SourceID:          p.SourceID,
		DestinationID:     p.DestinationID,
		MatchScore:        p.MatchScore,
		Level:             item.Level + 1,
		FoundVia:          via,
		FoundInFamilyID:   srcFamilyID,
		FoundFromPersonID: item.SourceID,
		FoundAt:           time.Now(),
	})
	if err != nil {
		return false
	}
	for _, issue := range decision.Issues {
		mappings.AddIssue(issue)
	}

	if !processed[p.SourceID] {
		processed[p.SourceID] = true
		queue.push(p.SourceID, item.Level+1)
	}
	return true
}

func mappedFatherDestination(sp *domain.Person, mappings *domain.MappingSet) string {
	if sp.FatherID == "" {
		return ""
	}
	dst, ok := mappings.DestinationOf(sp.FatherID)
	if !ok {
		return ""
	}
	return dst
}

func enqueueUnmatchedMembers(srcFamily *domain.Family, level int, mappings *domain.MappingSet, queue *fifoQueue, processed map[string]bool) {
	candidates := []string{}
	if srcFamily.HusbandID != "" {
		candidates = append(candidates, srcFamily.HusbandID)
	}
	if srcFamily.WifeID != "" {
		candidates = append(candidates, srcFamily.WifeID)
	}
	candidates = append(candidates, srcFamily.ChildrenIDs...)

	for _, id := range candidates {
		if mappings.SourceMapped(id) || processed[id] {
			continue
		}
		processed[id] = true
		queue.push(id, level+1)
	}
}

func buildLogEntry(runID uuid.UUID, level int, srcFamilyID string, result familymatch.Result) DetailedLogEntry {
	entry := DetailedLogEntry{
		RunID:          runID,
		Level:          level,
		SourceFamilyID: srcFamilyID,
		ChosenFamilyID: result.ChosenFamilyID,
		Matched:        result.Matched,
		CandidateCount: len(result.Candidates),
	}
	for _, c := range result.Candidates {
		if c.RejectReason != "" {
			entry.RejectedReasons = append(entry.RejectedReasons, c.RejectReason)
		}
	}
	return entry
}

func unmatchedIDs(persons map[string]*domain.Person, mapped func(string) bool) []string {
	var out []string
	for id := range persons {
		if !mapped(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func sortedLevelStats(levelStats map[int]*LevelStatistics) []LevelStatistics {
	out := make([]LevelStatistics, 0, len(levelStats))
	for _, ls := range levelStats {
		out = append(out, *ls)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

func aggregate(byLevel []LevelStatistics) AggregateStatistics {
	var agg AggregateStatistics
	for _, ls := range byLevel {
		agg.TotalPersonsProcessed += ls.PersonsProcessed
		agg.TotalNewMappings += ls.NewMappings
		agg.TotalFamiliesProcessed += ls.FamiliesProcessed
		agg.Duration += ls.Duration
	}
	return agg
}
