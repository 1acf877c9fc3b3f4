package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/rawvec/vector"
)

func main() {
	var (
		script      = flag.String("script", "", "Path to an operation script (one op per line)")
		elems       = flag.String("elems", "", "Initial elements (comma-separated integers)")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger := zap.Must(zap.NewDevelopment())
		defer logger.Sync()
		vector.SetLogger(logger)
	}

	v := vector.New[int]()
	if *elems != "" {
		if err := seed(v, *elems); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *script == "" {
		fmt.Fprintln(os.Stderr, "Usage: vecview -script <ops.txt> [-elems 1,2,3] [-v]")
		fmt.Fprintln(os.Stderr, "       vecview -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "\nOps:")
		fmt.Fprintln(os.Stderr, opsHelp)
		os.Exit(1)
	}

	if err := runScript(v, *script); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func seed(v *vector.Vector[int], csv string) error {
	for _, field := range strings.Split(csv, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("parse element %q: %w", field, err)
		}
		if err := v.PushBack(n); err != nil {
			return err
		}
	}
	return nil
}

func runScript(v *vector.Vector[int], path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, err := applyOp(v, line)
		if err != nil {
			return fmt.Errorf("line %d (%q): %w", lineNo, line, err)
		}
		fmt.Printf("%-24s %s\n", line, out)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	fmt.Printf("\nfinal: %s\n", formatVector(v))
	return nil
}

const opsHelp = `  push N        append N
  pop           remove the last element
  insert I N    insert N at index I
  erase I       remove the element at index I
  set I N       overwrite index I with N
  at I          read index I
  assign N,N,.. replace all elements
  reserve N     grow capacity to at least N
  resize N      set length to N (new slots zero)
  shrink        drop spare capacity
  clear         remove all elements
  show          print the current state`

// applyOp executes one scripted operation against v and returns a
// short human-readable result.
func applyOp(v *vector.Vector[int], line string) (string, error) {
	fields := strings.Fields(line)
	op, args := fields[0], fields[1:]

	argN := func(i int) (int, error) {
		if i >= len(args) {
			return 0, fmt.Errorf("%s: missing argument", op)
		}
		return strconv.Atoi(args[i])
	}

	switch op {
	case "push":
		n, err := argN(0)
		if err != nil {
			return "", err
		}
		if err := v.PushBack(n); err != nil {
			return "", err
		}
	case "pop":
		if v.Empty() {
			return "", fmt.Errorf("pop: vector is empty")
		}
		v.PopBack()
	case "insert":
		i, err := argN(0)
		if err != nil {
			return "", err
		}
		n, err := argN(1)
		if err != nil {
			return "", err
		}
		if i < 0 || i > v.Len() {
			return "", fmt.Errorf("insert: position %d out of range (length %d)", i, v.Len())
		}
		if err := v.Insert(i, n); err != nil {
			return "", err
		}
	case "erase":
		i, err := argN(0)
		if err != nil {
			return "", err
		}
		if i < 0 || i >= v.Len() {
			return "", fmt.Errorf("erase: index %d out of range (length %d)", i, v.Len())
		}
		if _, err := v.Erase(i); err != nil {
			return "", err
		}
	case "set":
		i, err := argN(0)
		if err != nil {
			return "", err
		}
		n, err := argN(1)
		if err != nil {
			return "", err
		}
		if i < 0 || i >= v.Len() {
			return "", fmt.Errorf("set: index %d out of range (length %d)", i, v.Len())
		}
		v.Set(i, n)
	case "at":
		i, err := argN(0)
		if err != nil {
			return "", err
		}
		if i < 0 || i >= v.Len() {
			return "", fmt.Errorf("at: index %d out of range (length %d)", i, v.Len())
		}
		return fmt.Sprintf("= %d", v.At(i)), nil
	case "assign":
		if len(args) == 0 {
			return "", fmt.Errorf("assign: missing elements")
		}
		var src []int
		for _, field := range strings.Split(strings.Join(args, ""), ",") {
			n, err := strconv.Atoi(field)
			if err != nil {
				return "", fmt.Errorf("assign: parse %q: %w", field, err)
			}
			src = append(src, n)
		}
		if err := v.Assign(src); err != nil {
			return "", err
		}
	case "reserve":
		n, err := argN(0)
		if err != nil {
			return "", err
		}
		if err := v.Reserve(n); err != nil {
			return "", err
		}
	case "resize":
		n, err := argN(0)
		if err != nil {
			return "", err
		}
		if n < 0 {
			return "", fmt.Errorf("resize: negative length %d", n)
		}
		if err := v.Resize(n); err != nil {
			return "", err
		}
	case "shrink":
		if err := v.ShrinkToFit(); err != nil {
			return "", err
		}
	case "clear":
		v.Clear()
	case "show":
	default:
		return "", fmt.Errorf("unknown op %q", op)
	}

	return formatVector(v), nil
}

func formatVector(v *vector.Vector[int]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", e)
	}
	b.WriteByte(']')
	fmt.Fprintf(&b, " len=%d cap=%d", v.Len(), v.Cap())
	return b.String()
}
