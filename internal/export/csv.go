// Package export renders world tables and ranking functions as CSV, the
// persisted-state format of spec.md §6 ("one column per interpretable in
// canonical order, plus a final k column; k=inf for infinity").
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"systemz/pkg/logic"
)

func header(ws *logic.WorldSet) []string {
	cols := make([]string, 0, len(ws.Interpretables)+1)
	for _, a := range ws.Interpretables {
		cols = append(cols, a.String())
	}
	return cols
}

// Worlds writes the canonical world table: one row per world, one column
// per interpretable, "1"/"0" for its truth value.
func Worlds(w io.Writer, ws *logic.WorldSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(ws)); err != nil {
		return err
	}
	row := make([]string, len(ws.Interpretables))
	for _, world := range ws.Worlds {
		for i := range row {
			if world.Get(i) {
				row[i] = "1"
			} else {
				row[i] = "0"
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseRanking reads a table written by Ranking and reconstructs the
// (world → rank) map as a *logic.Ranking over ws, the round-trip spec.md
// §8 requires ("printing κ to CSV and back yields the same map"). ws must
// be the WorldSet the CSV was rendered from: each data row's bit columns
// are decoded back into the canonical world index they were written at
// (the same n-1-i positional order BuildWorlds uses) and checked against
// the row's position, so a reordered or hand-edited CSV is rejected
// rather than silently mapped to the wrong world.
func ParseRanking(r io.Reader, ws *logic.WorldSet, kb *logic.KnowledgeBase) (*logic.Ranking, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("export: empty ranking CSV")
	}
	n := len(ws.Interpretables)
	wantHeader := append(header(ws), "k")
	got := rows[0]
	if len(got) != len(wantHeader) {
		return nil, fmt.Errorf("export: header has %d columns, want %d", len(got), len(wantHeader))
	}
	for i, col := range wantHeader {
		if got[i] != col {
			return nil, fmt.Errorf("export: header column %d = %q, want %q", i, got[i], col)
		}
	}
	if len(rows)-1 != len(ws.Worlds) {
		return nil, fmt.Errorf("export: %d data rows, want %d (one per world)", len(rows)-1, len(ws.Worlds))
	}

	ranks := make([]int, len(ws.Worlds))
	for rowIdx, row := range rows[1:] {
		if len(row) != n+1 {
			return nil, fmt.Errorf("export: row %d has %d columns, want %d", rowIdx, len(row), n+1)
		}
		k := 0
		for i := 0; i < n; i++ {
			switch row[i] {
			case "1":
				k |= 1 << uint(n-1-i)
			case "0":
			default:
				return nil, fmt.Errorf("export: row %d cell %q is neither %q nor %q", rowIdx, row[i], "0", "1")
			}
		}
		if k != rowIdx {
			return nil, fmt.Errorf("export: row %d decodes to world index %d; CSV is not in canonical world order", rowIdx, k)
		}
		cell := row[n]
		if cell == "inf" {
			ranks[rowIdx] = logic.Infinity
			continue
		}
		v, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("export: row %d rank %q: %w", rowIdx, cell, err)
		}
		ranks[rowIdx] = v
	}
	return &logic.Ranking{WS: ws, KB: kb, Ranks: ranks}, nil
}

// Ranking writes the world table plus a trailing "k" rank column,
// "inf" for infinite rank (spec.md §6).
func Ranking(w io.Writer, ranking *logic.Ranking) error {
	ws := ranking.WS
	cw := csv.NewWriter(w)
	if err := cw.Write(append(header(ws), "k")); err != nil {
		return err
	}
	row := make([]string, len(ws.Interpretables)+1)
	for wi, world := range ws.Worlds {
		for i := 0; i < len(ws.Interpretables); i++ {
			if world.Get(i) {
				row[i] = "1"
			} else {
				row[i] = "0"
			}
		}
		rank := ranking.RankWorld(wi)
		if rank >= logic.Infinity {
			row[len(row)-1] = "inf"
		} else {
			row[len(row)-1] = strconv.Itoa(rank)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
