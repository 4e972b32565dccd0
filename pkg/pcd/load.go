package pcd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/macropower/pcdgen/pkg/pcderrors"
)

const (
	setKey     = "set"
	entriesKey = "entries"
	nameKey    = "name"
	valueKey   = "value"
)

// numericLiteral matches the literals that denote the same value in every
// supported language once a kind suffix is appended. Integer literals must not
// have a leading zero, which C++ reads as octal.
var numericLiteral = regexp.MustCompile(`^[+-]?((\d+\.\d*|\.\d+)([eE][+-]?\d+)?|\d+[eE][+-]?\d+|0|[1-9]\d*)$`)

// Load reads and parses the constants database at path.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304 the database path is user input by design.
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", pcderrors.ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("%w: %w", pcderrors.ErrReadFile, err)
	}

	db, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded constants database",
		slog.String("path", path),
		slog.Int("groups", len(db.Groups)),
	)

	return db, nil
}

// Parse parses a constants database document. Every structural problem in the
// document is reported in a single error wrapping
// [pcderrors.ErrMalformedDatabase].
func Parse(data []byte) (*Database, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", pcderrors.ErrMalformedDatabase, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", pcderrors.ErrMalformedDatabase)
	}

	root := resolve(doc.Content[0])

	dict, err := lookup(root, RootKey, yaml.MappingNode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pcderrors.ErrMalformedDatabase, err)
	}

	set, err := lookup(dict, setKey, yaml.SequenceNode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", pcderrors.ErrMalformedDatabase, RootKey, err)
	}

	db := &Database{Groups: make([]Group, 0, len(set.Content))}
	firstSeen := map[string]int{}

	var merr error
	for i, item := range set.Content {
		g, err := parseGroup(resolve(item))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s[%d]: %w", setKey, i, err))

			continue
		}

		if line, ok := firstSeen[g.Name]; ok {
			merr = multierror.Append(merr, fmt.Errorf("%s[%d]: line %d: %w %q, first defined on line %d",
				setKey, i, item.Line, pcderrors.ErrDuplicateGroup, g.Name, line))

			continue
		}

		firstSeen[g.Name] = item.Line
		db.Groups = append(db.Groups, *g)
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", pcderrors.ErrMalformedDatabase, merr)
	}

	return db, nil
}

func parseGroup(n *yaml.Node) (*Group, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping with one group name, found %s", n.Line, kindName(n))
	}

	// Content holds alternating keys and values.
	if keys := len(n.Content) / 2; keys != 1 {
		names := make([]string, 0, keys)
		for i := 0; i < len(n.Content); i += 2 {
			names = append(names, n.Content[i].Value)
		}

		return nil, fmt.Errorf("line %d: expected exactly one group, found %d: [%s]",
			n.Line, keys, strings.Join(names, ", "))
	}

	key := n.Content[0]
	if key.Kind != yaml.ScalarNode || key.Value == "" {
		return nil, fmt.Errorf("line %d: group name must be a non-empty string", key.Line)
	}

	body := resolve(n.Content[1])
	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: group %q: expected a mapping, found %s", body.Line, key.Value, kindName(body))
	}

	entries, err := lookup(body, entriesKey, yaml.SequenceNode)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", key.Value, err)
	}

	g := &Group{
		Name:    key.Value,
		Entries: make([]Entry, 0, len(entries.Content)),
	}

	var merr error
	for i, item := range entries.Content {
		e, err := parseEntry(resolve(item))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("group %q: %s[%d]: %w", g.Name, entriesKey, i, err))

			continue
		}

		g.Entries = append(g.Entries, *e)
	}

	if merr != nil {
		return nil, merr
	}

	return g, nil
}

func parseEntry(n *yaml.Node) (*Entry, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping, found %s", n.Line, kindName(n))
	}

	name, err := lookup(n, nameKey, yaml.ScalarNode)
	if err != nil {
		return nil, err
	}

	if name.Value == "" {
		return nil, fmt.Errorf("line %d: %s must not be empty", name.Line, nameKey)
	}

	value, err := lookup(n, valueKey, yaml.ScalarNode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name.Value, err)
	}

	if !numericLiteral.MatchString(value.Value) {
		return nil, fmt.Errorf("line %d: %s: %s %q is not a numeric literal",
			value.Line, name.Value, valueKey, value.Value)
	}

	return &Entry{Name: name.Value, Value: value.Value}, nil
}

// lookup returns the value stored under key in the mapping node n, which must
// be of the given kind.
func lookup(n *yaml.Node, key string, kind yaml.Kind) (*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping containing %q, found %s", n.Line, key, kindName(n))
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value != key {
			continue
		}

		v := resolve(n.Content[i+1])
		if v.Kind != kind {
			return nil, fmt.Errorf("line %d: %q: expected %s, found %s", v.Line, key, kindNames[kind], kindName(v))
		}

		return v, nil
	}

	return nil, fmt.Errorf("line %d: missing key %q", n.Line, key)
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

var kindNames = map[yaml.Kind]string{
	yaml.DocumentNode: "a document",
	yaml.SequenceNode: "a sequence",
	yaml.MappingNode:  "a mapping",
	yaml.ScalarNode:   "a scalar",
	yaml.AliasNode:    "an alias",
}

func kindName(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" {
		return "null"
	}

	if name, ok := kindNames[n.Kind]; ok {
		return name
	}

	return "nothing"
}
