// Command gentable is the offline counterpart to charref.buildTrie:
// it fetches the WHATWG named-character-reference JSON table and
// renders it as the Go map literal charref/table.go's supplemental
// var would need if the reference list it tracks is ever widened
// beyond encoding/xml.HTMLEntity plus the hand-maintained HTML5
// additions. It is not part of any build: run it manually and paste
// its output in, the same way a reference table is regenerated rather
// than loaded at runtime (spec.md §9, "confine global state to the
// offline table generator").
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

const defaultSource = "https://html.spec.whatwg.org/entities.json"

type entityDef struct {
	Codepoints []int  `json:"codepoints"`
	Characters string `json:"characters"`
}

func main() {
	src := flag.String("source", defaultSource, "URL of the WHATWG entities.json table")
	out := flag.String("out", "", "output file; stdout if empty")
	flag.Parse()

	defs, err := fetch(*src)
	if err != nil {
		log.Fatalf("gentable: %v", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("gentable: %v", err)
		}
		defer f.Close()
		w = f
	}
	render(w, defs)
}

func fetch(url string) (map[string]entityDef, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var defs map[string]entityDef
	if err := json.NewDecoder(resp.Body).Decode(&defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// render prints only the entries whose name ends in ';', the same key
// shape charref.supplemental uses; semicolon-less legacy names are
// skipped. Entries that encoding/xml.HTMLEntity already covers are not
// filtered out.
func render(w *os.File, defs map[string]entityDef) {
	names := make([]string, 0, len(defs))
	for name := range defs {
		if strings.HasSuffix(name, ";") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(w, "var supplemental = map[string]string{")
	for _, name := range names {
		fmt.Fprintf(w, "\t%q: %q,\n", name, defs[name].Characters)
	}
	fmt.Fprintln(w, "}")
}
