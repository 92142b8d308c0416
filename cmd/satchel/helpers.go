// Shared helpers for satchel CLI commands.
// Implements: prd009-satchel-cli (R3, R7, R8).
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/satchel/internal/parse"
	"github.com/mesh-intelligence/satchel/internal/resolve"
	"github.com/mesh-intelligence/satchel/internal/tags"
	"github.com/mesh-intelligence/satchel/internal/taskfs"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// newEngine builds the tag engine over the resolved task directory with the
// production file system.
func newEngine() (*tags.Engine, *resolve.Resolver, error) {
	taskDir, err := resolveTaskDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve task dir: %w", err)
	}
	fsys := taskfs.NewOS()
	res := resolve.New(fsys, taskDir)
	return tags.New(fsys, res, parse.NewParser()), res, nil
}

// exitCode classifies an error: I/O failures are system errors, everything
// else is a user error (prd009-satchel-cli R8).
func exitCode(err error) int {
	if errors.Is(err, types.ErrIO) {
		return exitSysError
	}
	return exitUserError
}

// fail prints an error with its command context and exits with its class.
func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", context, err)
	os.Exit(exitCode(err))
}

// renderValue formats a typed value for human-readable output.
func renderValue(v types.Value) string {
	switch v.Kind {
	case types.KindString, types.KindDate:
		return v.Str
	case types.KindList:
		return strings.Join(v.List, ", ")
	case types.KindNull:
		return "null"
	case types.KindObject:
		pairs := make([]string, 0, v.Obj.Len())
		for _, key := range v.Obj.Keys() {
			nested, _ := v.Obj.Get(key)
			pairs = append(pairs, key+": "+renderValue(nested))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	}
	return fmt.Sprintf("%v", v.Interface())
}

// printValue prints a single typed value, honoring --json.
func printValue(v types.Value) {
	if flagJSON {
		printJSON(v.Interface())
		return
	}
	fmt.Println(renderValue(v))
}

// printMapping prints a full frontmatter mapping in field order, honoring
// --json.
func printMapping(fm *types.FrontMatter) {
	if flagJSON {
		printJSON(fm.Map())
		return
	}
	for _, key := range fm.Keys() {
		v, _ := fm.Get(key)
		fmt.Printf("%s: %s\n", key, renderValue(v))
	}
}

// printJSON marshals v indented to stdout; a marshal failure is a system
// error.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}
