package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/oset"
)

// A small interactive shell to explore ordered-set behavior, intended for
// demos and debugging tree shapes.

func main() {
	tree, err := oset.NewOrdered[string](3)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	repl := &repl{
		scanner: bufio.NewScanner(os.Stdin),
		tree:    tree,
		viz:     oset.VizConfigFromTerminal(),
	}
	repl.start()
}

type repl struct {
	scanner *bufio.Scanner
	tree    *oset.Tree[string]
	viz     *oset.VizConfig
}

func (r *repl) start() {
	r.printHelp()
	r.printPrompt()
	for r.scanner.Scan() {
		r.processInput(r.scanner.Text())
		r.printPrompt()
	}
}

func (r *repl) printHelp() {
	fmt.Println(`
Ordered-Set Shell

Available Commands:
  ADD <key>...       Insert keys into the set
  DEL <key>          Remove a key from the set
  GET <key>          Probe a key
  MIN | MAX          Pop the smallest / largest key
  RANGE <lo> <hi>    List keys in [lo, hi)
  LEN                Number of keys
  SHOW               Visualize the tree structure
  DOT                Print the tree in Graphviz DOT format
  EXIT               Terminate this session`)
}

func (r *repl) printPrompt() {
	fmt.Print("> ")
}

func (r *repl) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]
	switch command {
	default:
		fmt.Printf("Unknown command %q\n", command)
	case "add":
		if len(args) == 0 {
			fmt.Println("Usage: ADD <key>...")
			return
		}
		for _, key := range args {
			if prev, replaced, err := r.tree.ReplaceOrInsert(key); err != nil {
				fmt.Println(err)
			} else if replaced {
				fmt.Printf("replaced %q\n", prev)
			}
		}
	case "del":
		if len(args) != 1 {
			fmt.Println("Usage: DEL <key>")
			return
		}
		if _, ok := r.tree.Delete(args[0]); !ok {
			fmt.Println("Key not found.")
		}
	case "get":
		if len(args) != 1 {
			fmt.Println("Usage: GET <key>")
			return
		}
		if item, ok := r.tree.Get(args[0]); ok {
			fmt.Println(item)
		} else {
			fmt.Println("Key not found.")
		}
	case "min":
		if item, ok := r.tree.DeleteMin(); ok {
			fmt.Println(item)
		} else {
			fmt.Println("Set is empty.")
		}
	case "max":
		if item, ok := r.tree.DeleteMax(); ok {
			fmt.Println(item)
		} else {
			fmt.Println("Set is empty.")
		}
	case "range":
		if len(args) != 2 {
			fmt.Println("Usage: RANGE <lo> <hi>")
			return
		}
		for item := range r.tree.Range(args[0], args[1]) {
			fmt.Println(item)
		}
	case "len":
		fmt.Println(r.tree.Len())
	case "show":
		r.tree.Dump(os.Stdout, r.viz)
	case "dot":
		oset.Tree2Dot(r.tree, os.Stdout)
	case "exit":
		os.Exit(0)
	}
}
