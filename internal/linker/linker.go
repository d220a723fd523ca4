// Package linker hands an emitted object file off to the system linker. No
// third-party driver exists in the ecosystem for this - "link the object
// file" means "run clang" - so this package wraps os/exec directly.
package linker

import (
	"fmt"
	"os"
	"os/exec"
)

// Link writes obj to a temporary object file and invokes the system C
// compiler as the linker, producing outputPath. optLevel is forwarded as
// -O<level> so the linker's own optimization (e.g. identical code folding)
// matches the IR optimization level the caller already applied. The
// temporary object file is removed regardless of whether linking succeeds.
func Link(obj []byte, outputPath string, optLevel int) error {
	if optLevel < 0 {
		optLevel = 0
	}
	if optLevel > 3 {
		optLevel = 3
	}

	tmp, err := os.CreateTemp("", "lp-*.o")
	if err != nil {
		return fmt.Errorf("creating temporary object file: %w", err)
	}
	objPath := tmp.Name()
	defer os.Remove(objPath)

	if _, err := tmp.Write(obj); err != nil {
		tmp.Close()
		return fmt.Errorf("writing object file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing object file: %w", err)
	}

	driver := linkerDriver()
	cmd := exec.Command(driver, fmt.Sprintf("-O%d", optLevel), objPath, "-o", outputPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\n%s", driver, err, out)
	}
	return nil
}

// linkerDriver reports the compiler driver used as the linker, matching
// `clang <opt-flag> "<input>.o" -o "<output>"`. CC overrides the default
// when set, matching the usual cross-compilation escape hatch.
func linkerDriver() string {
	if cc := os.Getenv("CC"); cc != "" {
		return cc
	}
	return "clang"
}
