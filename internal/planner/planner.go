package planner

import (
	"sort"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
)

// Planner turns a requested question count into an ordered slot plan
// by scaling a topic's baseline recipe. Planning never fails: a topic
// with no profile degrades to the generic recipe.
type Planner struct {
	registry *curriculum.Registry
}

// New creates a planner over the given curriculum registry.
func New(registry *curriculum.Registry) *Planner {
	return &Planner{registry: registry}
}

// fallbackRecipe is the generic cross-subject recipe used when a topic
// has no profile. Sums to curriculum.RecipeTotal.
var fallbackRecipe = []curriculum.RecipeItem{
	{SlotType: string(SlotRecall), SkillTag: "core-concept", Count: 4},
	{SlotType: string(SlotApplication), SkillTag: "apply-concept", Count: 3},
	{SlotType: string(SlotRepresentation), SkillTag: "show-working", Count: 1},
	{SlotType: string(SlotErrorDetection), SkillTag: "spot-mistake", Count: 1},
	{SlotType: string(SlotThinking), SkillTag: "multi-step", Count: 1},
}

// FallbackSkillTags lists the skill tags of the generic recipe, for
// callers validating plans built without a topic profile.
func FallbackSkillTags() []string {
	tags := make([]string, 0, len(fallbackRecipe))
	for _, r := range fallbackRecipe {
		tags = append(tags, r.SkillTag)
	}
	return tags
}

// Plan builds a slot plan of exactly count slots for the topic.
func (p *Planner) Plan(count int, topic curriculum.CanonicalTopic) []SlotSpec {
	recipe := fallbackRecipe
	if p.registry != nil {
		if profile, ok := p.registry.ProfileOf(topic); ok && len(profile.Recipe) > 0 {
			recipe = profile.Recipe
		}
	}
	return planFromRecipe(recipe, count)
}

// planFromRecipe scales recipe counts to total using largest-remainder
// rounding, expands rows in recipe order, and returns exactly total
// slots.
func planFromRecipe(recipe []curriculum.RecipeItem, total int) []SlotSpec {
	if total <= 0 || len(recipe) == 0 {
		return nil
	}

	counts := scaleCounts(recipe, total)

	slots := make([]SlotSpec, 0, total)
	for i, row := range recipe {
		for n := 0; n < counts[i]; n++ {
			slots = append(slots, SlotSpec{
				Type:     SlotType(row.SlotType),
				SkillTag: row.SkillTag,
			})
		}
	}
	return slots
}

// scaleCounts distributes total units across recipe rows. Scaling runs
// at slot-type granularity first, so recipes with several rows of the
// same type cannot crowd out a distinct type at small totals; each
// type's allocation is then spread across its rows.
func scaleCounts(recipe []curriculum.RecipeItem, total int) []int {
	counts := make([]int, len(recipe))
	if total <= 0 {
		return counts
	}

	groups := groupByType(recipe)
	allocs := scaleTypes(groups, total)
	for g, group := range groups {
		spreadWithinType(recipe, group.rows, allocs[g], counts)
	}
	return counts
}

// typeGroup collects the recipe rows sharing one slot type.
type typeGroup struct {
	slotType SlotType
	rows     []int
	baseline int
}

// groupByType groups recipe row indices by slot type in first-seen
// order.
func groupByType(recipe []curriculum.RecipeItem) []typeGroup {
	index := make(map[SlotType]int)
	var groups []typeGroup
	for i, row := range recipe {
		st := SlotType(row.SlotType)
		g, ok := index[st]
		if !ok {
			g = len(groups)
			index[st] = g
			groups = append(groups, typeGroup{slotType: st})
		}
		groups[g].rows = append(groups[g].rows, i)
		groups[g].baseline += row.Count
	}
	return groups
}

// scaleTypes distributes total units across slot types proportionally
// to their baseline counts. Every type with a non-zero baseline keeps
// at least one unit whenever total allows; leftover units go to types
// by largest fractional remainder, tie-broken by slot-type priority
// then first appearance.
func scaleTypes(groups []typeGroup, total int) []int {
	n := len(groups)
	allocs := make([]int, n)
	remainders := make([]int, n)

	sum := 0
	active := 0
	for _, g := range groups {
		sum += g.baseline
		if g.baseline > 0 {
			active++
		}
	}
	if sum == 0 {
		return allocs
	}

	order := typeOrder(groups, func(i, j int) bool { return false })

	// Not enough units to keep every type alive: serve types in
	// priority order, one unit each.
	if total < active {
		served := 0
		for _, g := range order {
			if groups[g].baseline == 0 {
				continue
			}
			allocs[g] = 1
			served++
			if served == total {
				break
			}
		}
		return allocs
	}

	assigned := 0
	for i, g := range groups {
		scaled := total * g.baseline
		allocs[i] = scaled / sum
		remainders[i] = scaled % sum
		if g.baseline > 0 && allocs[i] == 0 {
			allocs[i] = 1
		}
		assigned += allocs[i]
	}

	// Floor-protection can overshoot small totals; reclaim units from
	// the lowest-priority types first, never dropping a type to zero.
	if assigned > total {
		for k := n - 1; k >= 0 && assigned > total; k-- {
			i := order[k]
			for allocs[i] > 1 && assigned > total {
				allocs[i]--
				assigned--
			}
		}
	}

	// Largest remainder for whatever is left.
	if assigned < total {
		byRemainder := typeOrder(groups, func(i, j int) bool {
			return remainders[i] > remainders[j]
		})
		for k := 0; assigned < total; k = (k + 1) % n {
			i := byRemainder[k]
			if groups[i].baseline == 0 {
				continue
			}
			allocs[i]++
			assigned++
		}
	}

	return allocs
}

// spreadWithinType splits one slot type's allocation across its recipe
// rows proportionally to row baselines, leftovers by largest
// fractional remainder then row order.
func spreadWithinType(recipe []curriculum.RecipeItem, rows []int, alloc int, counts []int) {
	if alloc == 0 {
		return
	}
	if len(rows) == 1 {
		counts[rows[0]] = alloc
		return
	}

	base := 0
	for _, r := range rows {
		base += recipe[r].Count
	}
	if base == 0 {
		counts[rows[0]] = alloc
		return
	}

	remainders := make(map[int]int, len(rows))
	assigned := 0
	for _, r := range rows {
		scaled := alloc * recipe[r].Count
		counts[r] = scaled / base
		remainders[r] = scaled % base
		assigned += counts[r]
	}

	order := append([]int(nil), rows...)
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for k := 0; assigned < alloc; k = (k + 1) % len(order) {
		counts[order[k]]++
		assigned++
	}
}

// typeOrder returns group indices sorted by the given primary
// comparison, then slot-type priority, then first appearance.
func typeOrder(groups []typeGroup, primary func(i, j int) bool) []int {
	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if primary(i, j) != primary(j, i) {
			return primary(i, j)
		}
		pi, pj := groups[i].slotType.Priority(), groups[j].slotType.Priority()
		if pi != pj {
			return pi < pj
		}
		return i < j
	})
	return order
}
