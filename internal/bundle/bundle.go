// Package bundle assembles the deployable site: the compiled wasm client,
// the Go runtime shim, and the page assets.
package bundle

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sitewire/sitewire/internal/progress"
)

// Options controls a bundle run.
type Options struct {
	// WebDir is the directory of page assets copied into the bundle.
	WebDir string
	// OutDir receives the bundled site.
	OutDir string
}

// Run produces a complete bundle under opts.OutDir: app.wasm, wasm_exec.js,
// and every file from opts.WebDir.
func Run(ctx context.Context, opts Options, reporter progress.Reporter) error {
	if reporter != nil {
		reporter.Start(3)
		defer reporter.Finish()
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return fmt.Errorf("bundle: creating %s: %w", opts.OutDir, err)
	}

	if reporter != nil {
		reporter.Update(1, "compiling wasm client")
	}
	if err := compileWasm(ctx, filepath.Join(opts.OutDir, "app.wasm")); err != nil {
		return err
	}

	if reporter != nil {
		reporter.Update(2, "copying wasm_exec.js")
	}
	shim, err := wasmExecPath(ctx)
	if err != nil {
		return err
	}
	if err := copyFile(shim, filepath.Join(opts.OutDir, "wasm_exec.js")); err != nil {
		return fmt.Errorf("bundle: copying wasm_exec.js: %w", err)
	}

	if reporter != nil {
		reporter.Update(3, "copying page assets")
	}
	if err := copyAssets(opts.WebDir, opts.OutDir); err != nil {
		return err
	}
	return nil
}

// compileWasm builds the client for the browser.
func compileWasm(ctx context.Context, out string) error {
	cmd := exec.CommandContext(ctx, "go", "build", "-o", out, "./cmd/app")
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("bundle: go build: %w\n%s", err, output)
	}
	return nil
}

// wasmExecPath locates the runtime shim inside the active toolchain. Go
// moved it from misc/wasm to lib/wasm in 1.24; both are tried.
func wasmExecPath(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "go", "env", "GOROOT").Output()
	if err != nil {
		return "", fmt.Errorf("bundle: go env GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(out))

	for _, rel := range []string{"lib/wasm/wasm_exec.js", "misc/wasm/wasm_exec.js"} {
		path := filepath.Join(goroot, filepath.FromSlash(rel))
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("bundle: wasm_exec.js not found under %s", goroot)
}

// copyAssets mirrors every regular file from webDir into outDir, keeping
// the directory layout.
func copyAssets(webDir, outDir string) error {
	return filepath.WalkDir(webDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(webDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		// Go sources under web/ are tooling, not site assets.
		if strings.HasSuffix(rel, ".go") {
			return nil
		}
		if err := copyFile(path, dst); err != nil {
			return fmt.Errorf("bundle: copying %s: %w", rel, err)
		}
		return nil
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
