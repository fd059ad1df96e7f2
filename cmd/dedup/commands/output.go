package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/dedup/internal/app"
	"go.trai.ch/dedup/internal/core/domain"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSets(w io.Writer, sets domain.DuplicateSets) {
	for _, key := range sets.Keys() {
		_, _ = fmt.Fprintln(w, key)
		for _, dir := range sets[key] {
			_, _ = fmt.Fprintf(w, "  %s\n", dir)
		}
	}
	_, _ = fmt.Fprintf(w, "%d duplicate sets, %d directories\n", len(sets), sets.Members())
}

func writePlan(w io.Writer, plan *app.Plan) {
	for _, key := range plan.Sets.Keys() {
		winner := plan.Mapping[key]
		_, _ = fmt.Fprintf(w, "%s => %s\n", key, winner)
		for _, dir := range plan.Sets[key] {
			if dir == winner {
				continue
			}
			_, _ = fmt.Fprintf(w, "  - %s\n", dir)
		}
	}
}

func writeReport(w io.Writer, report *app.ResolveReport) {
	for _, r := range report.Results {
		if !r.Rewritten {
			_, _ = fmt.Fprintf(w, "%s: unchanged\n", r.Request.Request)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s: %s => %s\n", r.Request.Request, r.Outcome.Original, r.Outcome.Path)
	}
}
