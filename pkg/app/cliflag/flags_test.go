package cliflag

import (
	"bytes"
	"strings"
	"testing"
)

func TestNamedFlagSets(t *testing.T) {
	var fss NamedFlagSets
	fss.FlagSet("log").String("log.level", "info", "Log level")
	fss.FlagSet("guid").String("guid.machine-id", "", "Machine id override")
	fss.FlagSet("log").Bool("log.development", false, "Development mode")
	fss.FlagSet("empty")

	if got := strings.Join(fss.Order, ","); got != "log,guid,empty" {
		t.Errorf("Order = %s", got)
	}

	var buf bytes.Buffer
	PrintSections(&buf, fss)
	out := buf.String()

	for _, want := range []string{"Log flags:", "--log.level", "--log.development", "Guid flags:", "--guid.machine-id"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Empty flags:") {
		t.Error("empty flag sets should be skipped")
	}
	if strings.Index(out, "Log flags:") > strings.Index(out, "Guid flags:") {
		t.Error("sections out of order")
	}
}
