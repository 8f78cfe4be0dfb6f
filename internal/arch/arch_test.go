// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Frontend packages. Nothing below the command layer may reach them.
var frontend = []string{
	"seqwin/internal/app", "seqwin/internal/cli", "seqwin/internal/writers",
	"seqwin/internal/output", "seqwin/internal/config", "seqwin/internal/cmdutil",
	"seqwin/cmd/",
}

func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"seqwin/internal/mmapio":   append([]string{"seqwin/internal/scanner", "seqwin/internal/window", "seqwin/internal/seqindex"}, frontend...),
		"seqwin/internal/seqindex": append([]string{"seqwin/internal/scanner", "seqwin/internal/window", "seqwin/internal/mmapio"}, frontend...),
		"seqwin/internal/scanner":  append([]string{"seqwin/internal/window", "seqwin/internal/fasta"}, frontend...),
		"seqwin/internal/window":   append([]string{"seqwin/internal/scanner", "seqwin/internal/fasta"}, frontend...),
		"seqwin/internal/fasta":    append([]string{"seqwin/internal/mmapio", "seqwin/internal/scanner"}, frontend...),
		"seqwin/internal/verify":   append([]string{"seqwin/internal/scanner", "seqwin/internal/mmapio"}, frontend...),
		"seqwin/internal/output": {
			"seqwin/internal/app", "seqwin/internal/cli", "seqwin/internal/writers", "seqwin/cmd/",
		},
		"seqwin/internal/writers": {
			"seqwin/internal/app", "seqwin/internal/cli", "seqwin/cmd/",
		},
		"seqwin/pkg/api": {"seqwin/internal/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "seqwin/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "seqwin/") {
					continue
				}
				for _, ban := range forbidden {
					if dep == ban || (strings.HasSuffix(ban, "/") && strings.HasPrefix(dep, ban)) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
