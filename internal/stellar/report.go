package stellar

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/litescript/ls-starfield/internal/catalog"
)

// WriteSummary prints a table of projected stars, one row per star, for
// the headless -summary mode.
func WriteSummary(w io.Writer, stars []ProjectedStar) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCLASS\tTEMP (K)\tRADIUS\tSTATUS")
	for _, s := range stars {
		fmt.Fprintf(tw, "%s\t%s (%s)\t%d\t%s\t%s\n",
			s.Name,
			s.Class,
			s.Class.Def().Label,
			int(s.TempK),
			FormatSize(s.RadiusSun),
			s.Status,
		)
	}
	tw.Flush()
}

// WriteClassification prints a classification report for one catalog
// record: which rule decided the class and why.
func WriteClassification(w io.Writer, rec catalog.Record) {
	class := Classify(rec.Spectral, rec.Mag)
	def := class.Def()

	name := rec.Name
	if name == "" {
		name = "(unnamed)"
	}

	fmt.Fprintf(w, "%s\n", name)
	if rec.Spectral != "" {
		fmt.Fprintf(w, "  spectral type: %q -> class %s\n", rec.Spectral, class)
	} else {
		fmt.Fprintf(w, "  no spectral type; magnitude %.2f -> class %s\n", rec.Mag, class)
	}
	fmt.Fprintf(w, "  %s, %d-%d K, %.2f-%.2f Sun radii\n",
		def.Label, int(def.TempMin), int(def.TempMax), def.RadMin, def.RadMax)
}
