package stellar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/litescript/ls-starfield/internal/catalog"
)

func TestWriteSummary(t *testing.T) {
	stars := []ProjectedStar{
		{Name: "Sirius", Class: ClassA, TempK: 8900.4, RadiusSun: 1.71, Status: StatusUnclaimed},
	}

	var buf bytes.Buffer
	WriteSummary(&buf, stars)
	out := buf.String()

	for _, want := range []string{"NAME", "Sirius", "A (White Star)", "8900", "1.71 R☉", "unclaimed"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteClassification(t *testing.T) {
	var buf bytes.Buffer
	WriteClassification(&buf, catalog.Record{Name: "Sirius", Spectral: "A1V", Mag: -1.46})
	if !strings.Contains(buf.String(), `spectral type: "A1V" -> class A`) {
		t.Errorf("spectral rule not reported:\n%s", buf.String())
	}

	buf.Reset()
	WriteClassification(&buf, catalog.Record{Mag: 4.2})
	out := buf.String()
	if !strings.Contains(out, "(unnamed)") {
		t.Errorf("missing unnamed placeholder:\n%s", out)
	}
	if !strings.Contains(out, "magnitude 4.20 -> class G") {
		t.Errorf("ladder rule not reported:\n%s", out)
	}
}
