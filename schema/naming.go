package schema

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-openapi/inflect"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GUID",
		"HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "QPS", "RAM", "RPC",
		"SLA", "SMTP", "SQL", "SSH", "TCP", "TLS", "TTL", "UDP", "UI",
		"UID", "URI", "URL", "UTF8", "UUID", "VM", "XML", "XSS",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// AddAcronym registers an additional initialism with the naming rules,
// so that goName("acme_id") style derivations keep it uppercased.
func AddAcronym(word string) {
	word = strings.ToUpper(word)
	acronyms[word] = struct{}{}
	rules.AddAcronym(word)
}

// goName derives the exported Go identifier for a schema name,
// e.g. "book_i18n" -> "BookI18n" and "book_id" -> "BookID".
func goName(name string) string {
	words := strings.FieldsFunc(name, isSeparator)
	for i, w := range words {
		if u := strings.ToUpper(w); isAcronym(u) {
			words[i] = u
		} else {
			words[i] = rules.Capitalize(w)
		}
	}
	return strings.Join(words, "")
}

func isAcronym(word string) bool {
	_, ok := acronyms[word]
	return ok
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// resolveNamespace computes the effective code namespace of a table.
// An absolute namespace (leading "/") overrides the database namespace;
// a relative one is concatenated under it.
func resolveNamespace(base, ns string) string {
	switch {
	case ns == "":
		return base
	case strings.HasPrefix(ns, "/"):
		return strings.TrimPrefix(ns, "/")
	default:
		return path.Join(base, ns)
	}
}

// doNaming completes the table's derived names: the table Go name and the
// Go name of every column that has not been named explicitly. It runs before
// any behavior executes and again during the per-table final pass, so columns
// added by behaviors are covered too.
func (t *Table) doNaming() {
	if t.goName == "" {
		t.goName = goName(t.Name)
	}
	for _, c := range t.columnList {
		if c.goName == "" {
			c.goName = goName(c.Name)
		}
	}
}

// nameConstraints assigns stable generated names to unnamed foreign keys
// and indexes: <table>_fk_<n> and <table>_i_<n>.
func (t *Table) nameConstraints() {
	for i, fk := range t.foreignKeys {
		if fk.Name == "" {
			fk.Name = fmt.Sprintf("%s_fk_%d", t.Name, i+1)
		}
	}
	for i, ix := range t.indexes {
		if ix.Name == "" {
			ix.Name = fmt.Sprintf("%s_i_%d", t.Name, i+1)
		}
	}
}
