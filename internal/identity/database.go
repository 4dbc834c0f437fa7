package identity

import (
	"fmt"
	"strconv"
	"strings"

	"qsym/internal/qsymerr"
)

// Side is one side of an identity record (LHS or RHS).
type Side struct {
	ExprType string // "eta_quotient", "q_series", "theta", "jac"
	Level    *int64
	Factors  map[int64]int64 // delta -> r_delta, eta_quotient only
	Formula  string
}

// Citation is optional bibliographic metadata for an identity.
type Citation struct {
	Author    string
	Year      int64
	Reference string
	DOI       string
}

// Proof is optional proof metadata for an identity.
type Proof struct {
	Method   string // "valence_formula", "q_expansion", "bijective", "classical", "definition"
	Level    int64
	Verified bool
}

// Entry is a single record in the identity database.
type Entry struct {
	ID        string
	Name      string
	Tags      []string
	Functions []string
	LHS       Side
	RHS       Side
	Proof     *Proof
	Citation  *Citation
}

// AsEta converts side to an EtaExpression when it is of type
// "eta_quotient" and carries a level; returns false otherwise.
func (s Side) AsEta() (EtaExpression, bool) {
	if s.ExprType != "eta_quotient" || s.Level == nil {
		return EtaExpression{}, false
	}
	eta, err := NewEtaExpression(s.Factors, *s.Level)
	if err != nil {
		return EtaExpression{}, false
	}
	return eta, true
}

// LHSAsEta converts the entry's LHS to an EtaExpression.
func (e Entry) LHSAsEta() (EtaExpression, bool) { return e.LHS.AsEta() }

// RHSAsEta converts the entry's RHS to an EtaExpression.
func (e Entry) RHSAsEta() (EtaExpression, bool) { return e.RHS.AsEta() }

// LHSAsJac converts the entry's LHS to a JacExpression.
func (e Entry) LHSAsJac() (JacExpression, bool) { return e.LHS.AsJac() }

// RHSAsJac converts the entry's RHS to a JacExpression.
func (e Entry) RHSAsJac() (JacExpression, bool) { return e.RHS.AsJac() }

// Database is a searchable, in-memory collection of identity records.
type Database struct {
	entries []Entry
}

// NewDatabase returns an empty database.
func NewDatabase() *Database { return &Database{} }

// Add appends entry to the database.
func (d *Database) Add(entry Entry) { d.entries = append(d.entries, entry) }

// Len returns the number of entries.
func (d *Database) Len() int { return len(d.entries) }

// IsEmpty reports whether the database has no entries.
func (d *Database) IsEmpty() bool { return len(d.entries) == 0 }

// ByID returns the entry with the given id, if present.
func (d *Database) ByID(id string) (Entry, bool) {
	for _, e := range d.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ByTag returns every entry carrying tag.
func (d *Database) ByTag(tag string) []Entry {
	var out []Entry
	for _, e := range d.entries {
		for _, t := range e.Tags {
			if t == tag {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// ByFunction returns every entry whose Functions list contains fn.
func (d *Database) ByFunction(fn string) []Entry {
	var out []Entry
	for _, e := range d.entries {
		for _, f := range e.Functions {
			if f == fn {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// ByPattern returns every entry whose id or name contains pattern
// (case-sensitive substring match).
func (d *Database) ByPattern(pattern string) []Entry {
	var out []Entry
	for _, e := range d.entries {
		if strings.Contains(e.ID, pattern) || strings.Contains(e.Name, pattern) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns every entry in insertion order.
func (d *Database) Entries() []Entry { return append([]Entry(nil), d.entries...) }

// --- text-format load/serialize ---
//
// Each record is a "[identity]" block of "key = value" lines, blank
// lines separating records, "#" starting a comment line. Lists
// (tags, functions) are comma-separated; eta-quotient factors are
// "delta:r_delta" pairs separated by commas.

// Serialize renders the database to its line/record text format.
func (d *Database) Serialize() string {
	var b strings.Builder
	for i, e := range d.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[identity]\n")
		fmt.Fprintf(&b, "id = %s\n", e.ID)
		fmt.Fprintf(&b, "name = %s\n", e.Name)
		fmt.Fprintf(&b, "tags = %s\n", strings.Join(e.Tags, ","))
		fmt.Fprintf(&b, "functions = %s\n", strings.Join(e.Functions, ","))
		writeSide(&b, "lhs", e.LHS)
		writeSide(&b, "rhs", e.RHS)
		if e.Proof != nil {
			fmt.Fprintf(&b, "proof.method = %s\n", e.Proof.Method)
			fmt.Fprintf(&b, "proof.level = %d\n", e.Proof.Level)
			fmt.Fprintf(&b, "proof.verified = %t\n", e.Proof.Verified)
		}
		if e.Citation != nil {
			fmt.Fprintf(&b, "citation.author = %s\n", e.Citation.Author)
			fmt.Fprintf(&b, "citation.year = %d\n", e.Citation.Year)
			fmt.Fprintf(&b, "citation.reference = %s\n", e.Citation.Reference)
			fmt.Fprintf(&b, "citation.doi = %s\n", e.Citation.DOI)
		}
	}
	return b.String()
}

func writeSide(b *strings.Builder, prefix string, s Side) {
	fmt.Fprintf(b, "%s.type = %s\n", prefix, s.ExprType)
	if s.Level != nil {
		fmt.Fprintf(b, "%s.level = %d\n", prefix, *s.Level)
	}
	if len(s.Factors) > 0 {
		deltas := make([]int64, 0, len(s.Factors))
		for d := range s.Factors {
			deltas = append(deltas, d)
		}
		sortInt64s(deltas)
		parts := make([]string, len(deltas))
		for i, d := range deltas {
			parts[i] = fmt.Sprintf("%d:%d", d, s.Factors[d])
		}
		fmt.Fprintf(b, "%s.factors = %s\n", prefix, strings.Join(parts, ","))
	}
	if s.Formula != "" {
		fmt.Fprintf(b, "%s.formula = %s\n", prefix, s.Formula)
	}
}

func sortInt64s(s []int64) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Load parses the line/record text format into a new Database.
func Load(text string) (*Database, error) {
	db := NewDatabase()
	var cur *Entry
	var curLHS, curRHS *Side

	flush := func() {
		if cur != nil {
			cur.LHS = *curLHS
			cur.RHS = *curRHS
			db.Add(*cur)
		}
	}

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "[identity]" {
			flush()
			cur = &Entry{}
			curLHS = &Side{}
			curRHS = &Side{}
			continue
		}
		if cur == nil {
			return nil, qsymerr.Newf(qsymerr.InvariantViolation, "identity.Load",
				"line %d: key outside any [identity] block", lineNo+1)
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, qsymerr.Newf(qsymerr.InvariantViolation, "identity.Load",
				"line %d: expected key = value, got %q", lineNo+1, line)
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		if err := setField(cur, curLHS, curRHS, key, val); err != nil {
			return nil, err
		}
	}
	flush()
	return db, nil
}

func setField(e *Entry, lhs, rhs *Side, key, val string) error {
	switch {
	case key == "id":
		e.ID = val
	case key == "name":
		e.Name = val
	case key == "tags":
		e.Tags = splitNonEmpty(val)
	case key == "functions":
		e.Functions = splitNonEmpty(val)
	case strings.HasPrefix(key, "lhs."):
		return setSide(lhs, strings.TrimPrefix(key, "lhs."), val)
	case strings.HasPrefix(key, "rhs."):
		return setSide(rhs, strings.TrimPrefix(key, "rhs."), val)
	case strings.HasPrefix(key, "proof."):
		if e.Proof == nil {
			e.Proof = &Proof{}
		}
		return setProof(e.Proof, strings.TrimPrefix(key, "proof."), val)
	case strings.HasPrefix(key, "citation."):
		if e.Citation == nil {
			e.Citation = &Citation{}
		}
		return setCitation(e.Citation, strings.TrimPrefix(key, "citation."), val)
	default:
		return qsymerr.Newf(qsymerr.InvariantViolation, "identity.Load", "unknown key %q", key)
	}
	return nil
}

func setSide(s *Side, key, val string) error {
	switch key {
	case "type":
		s.ExprType = val
	case "level":
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return qsymerr.Newf(qsymerr.InvariantViolation, "identity.Load", "bad level %q: %v", val, err)
		}
		s.Level = &n
	case "factors":
		s.Factors = make(map[int64]int64)
		for _, pair := range splitNonEmpty(val) {
			d, r, ok := strings.Cut(pair, ":")
			if !ok {
				return qsymerr.Newf(qsymerr.InvariantViolation, "identity.Load", "bad factor pair %q", pair)
			}
			delta, err1 := strconv.ParseInt(d, 10, 64)
			rDelta, err2 := strconv.ParseInt(r, 10, 64)
			if err1 != nil || err2 != nil {
				return qsymerr.Newf(qsymerr.InvariantViolation, "identity.Load", "bad factor pair %q", pair)
			}
			s.Factors[delta] = rDelta
		}
	case "formula":
		s.Formula = val
	default:
		return qsymerr.Newf(qsymerr.InvariantViolation, "identity.Load", "unknown side key %q", key)
	}
	return nil
}

func setProof(p *Proof, key, val string) error {
	switch key {
	case "method":
		p.Method = val
	case "level":
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return err
		}
		p.Level = n
	case "verified":
		p.Verified = val == "true"
	}
	return nil
}

func setCitation(c *Citation, key, val string) error {
	switch key {
	case "author":
		c.Author = val
	case "year":
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return err
		}
		c.Year = n
	case "reference":
		c.Reference = val
	case "doi":
		c.DOI = val
	}
	return nil
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
