package backtest

import (
	"sort"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

type groupKey struct {
	setup types.SetupKind
	side  types.Side
}

// Aggregate summarizes the trades per setup group, one row per group
// and horizon. Return stats cover only the trades whose return at that
// horizon is defined and go undefined when no trade qualifies. The
// touch rates cover every trade in the group, so they repeat across
// the group's horizon rows. Groups are emitted in lexicographic order.
func Aggregate(trades []types.TradeRecord) []types.AggregateStat {
	groups := make(map[groupKey][]types.TradeRecord)
	for _, tr := range trades {
		k := groupKey{setup: tr.Setup, side: tr.Side}
		groups[k] = append(groups[k], tr)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].setup != keys[j].setup {
			return keys[i].setup < keys[j].setup
		}
		return keys[i].side < keys[j].side
	})

	out := make([]types.AggregateStat, 0, len(keys)*len(types.Horizons))
	for _, k := range keys {
		rows := groups[k]

		tgtHits, stpHits := 0, 0
		for _, tr := range rows {
			if tr.TgtHit10 {
				tgtHits++
			}
			if tr.StpHit10 {
				stpHits++
			}
		}
		tgtRate := float64(tgtHits) / float64(len(rows))
		stpRate := float64(stpHits) / float64(len(rows))

		for _, d := range types.Horizons {
			rets := make([]float64, 0, len(rows))
			wins := 0
			for _, tr := range rows {
				r := tr.Ret(d)
				if !r.Valid {
					continue
				}
				rets = append(rets, r.Value)
				if r.Value > 0 {
					wins++
				}
			}

			stat := types.AggregateStat{
				Setup:    k.setup,
				Side:     k.side,
				Horizon:  d,
				N:        len(rets),
				TgtHit10: tgtRate,
				StpHit10: stpRate,
			}
			if len(rets) > 0 {
				stat.Avg = types.F(mean(rets))
				stat.Median = types.F(median(rets))
				stat.PosRate = types.F(float64(wins) / float64(len(rets)))
			}
			out = append(out, stat)
		}
	}
	return out
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median interpolates between the two middle values of an even-length
// series.
func median(vals []float64) float64 {
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
