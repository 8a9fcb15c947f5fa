package oset

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id, ok := ids.idTable[n]; ok {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[T any](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	if t == nil || t.root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		id := ids.alloc(n)
		labels := make([]string, len(n.items))
		for i, item := range n.items {
			labels[i] = dotEscape(fmt.Sprintf("%v", item))
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"];\n", id, strings.Join(labels, "|"))
		for _, child := range n.children {
			walk(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids.alloc(child))
		}
	}
	walk(t.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotEscape(s string) string {
	r := strings.NewReplacer("\"", "\\\"", "|", "\\|", "{", "\\{", "}", "\\}", "<", "\\<", ">", "\\>")
	return r.Replace(s)
}
