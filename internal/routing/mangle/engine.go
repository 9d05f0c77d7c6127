// Package mangle is the logic-rule backend of the decision engine: the
// catalogue semantics expressed as a Datalog program and evaluated by the
// Google Mangle interpreter. It must agree byte-for-byte with the native
// backend on every snapshot; the conformance suite in internal/routing
// enforces that.
package mangle

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	mengine "github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"

	"personal-agent/internal/capability"
	"personal-agent/internal/model"
	"personal-agent/internal/routing"
)

//go:embed router.mg
var routerProgram string

// Engine evaluates the embedded router.mg ruleset. Each Decide call
// renders the snapshot as facts, evaluates a fresh program, and reads the
// derived route/route_arg/need_info facts back. No state survives a call,
// which keeps Decide pure and safe for concurrent use.
type Engine struct {
	caps *capability.Registry
}

var _ routing.Engine = (*Engine)(nil)

// New creates the Mangle backend bound to a capability registry.
func New(caps *capability.Registry) *Engine {
	return &Engine{caps: caps}
}

// Name implements routing.Engine.
func (e *Engine) Name() string { return "mangle" }

// Decide implements routing.Engine.
func (e *Engine) Decide(intent model.Intent, entities model.EntityBag, constraints model.ConstraintBag) (model.RoutingDecision, error) {
	program := routerProgram + "\n" + renderFacts(intent, entities, constraints)

	unit, err := parse.Unit(strings.NewReader(program))
	if err != nil {
		return model.RoutingDecision{}, fmt.Errorf("mangle: parse ruleset: %w", err)
	}

	programInfo, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return model.RoutingDecision{}, fmt.Errorf("mangle: analyze ruleset: %w", err)
	}

	store := factstore.NewSimpleInMemoryStore()
	if err := mengine.EvalProgram(programInfo, store); err != nil {
		return model.RoutingDecision{}, fmt.Errorf("mangle: evaluate ruleset: %w", err)
	}

	if decision, ok, err := e.readRoute(store); err != nil || ok {
		return decision, err
	}
	if decision, ok, err := readNeedInfo(store); err != nil || ok {
		return decision, err
	}
	return model.NewNoMatch(), nil
}

// readRoute selects the lowest-ranked derived route fact and assembles its
// ordered arguments from route_arg facts.
func (e *Engine) readRoute(store factstore.FactStore) (model.RoutingDecision, bool, error) {
	type candidate struct {
		rank int64
		tool string
	}
	var routes []candidate

	err := store.GetFacts(ast.NewQuery(ast.PredicateSym{Symbol: "route", Arity: 2}), func(fact ast.Atom) error {
		rank, err := numberArg(fact, 0)
		if err != nil {
			return err
		}
		tool, err := nameArg(fact, 1)
		if err != nil {
			return err
		}
		routes = append(routes, candidate{rank: rank, tool: tool})
		return nil
	})
	if err != nil {
		return model.RoutingDecision{}, false, fmt.Errorf("mangle: read route facts: %w", err)
	}
	if len(routes) == 0 {
		return model.RoutingDecision{}, false, nil
	}

	sort.Slice(routes, func(i, j int) bool { return routes[i].rank < routes[j].rank })
	winner := routes[0]

	if !e.caps.Has(winner.tool) {
		return model.RoutingDecision{}, false, fmt.Errorf("mangle: rule rank %d targets undeclared tool %q", winner.rank, winner.tool)
	}

	type argRow struct {
		idx   int64
		name  string
		value string
	}
	var rows []argRow

	err = store.GetFacts(ast.NewQuery(ast.PredicateSym{Symbol: "route_arg", Arity: 4}), func(fact ast.Atom) error {
		rank, err := numberArg(fact, 0)
		if err != nil {
			return err
		}
		if rank != winner.rank {
			return nil
		}
		idx, err := numberArg(fact, 1)
		if err != nil {
			return err
		}
		name, err := nameArg(fact, 2)
		if err != nil {
			return err
		}
		value, err := stringArg(fact, 3)
		if err != nil {
			return err
		}
		rows = append(rows, argRow{idx: idx, name: name, value: value})
		return nil
	})
	if err != nil {
		return model.RoutingDecision{}, false, fmt.Errorf("mangle: read route_arg facts: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].idx < rows[j].idx })
	args := make(model.Args, 0, len(rows))
	for _, row := range rows {
		args = append(args, model.Arg{Name: row.name, Value: row.value})
	}

	return model.NewRoute(winner.tool, args), true, nil
}

func readNeedInfo(store factstore.FactStore) (model.RoutingDecision, bool, error) {
	type needRow struct {
		rank     int64
		missing  string
		question string
	}
	var rows []needRow

	err := store.GetFacts(ast.NewQuery(ast.PredicateSym{Symbol: "need_info", Arity: 3}), func(fact ast.Atom) error {
		rank, err := numberArg(fact, 0)
		if err != nil {
			return err
		}
		missing, err := nameArg(fact, 1)
		if err != nil {
			return err
		}
		question, err := stringArg(fact, 2)
		if err != nil {
			return err
		}
		rows = append(rows, needRow{rank: rank, missing: missing, question: question})
		return nil
	})
	if err != nil {
		return model.RoutingDecision{}, false, fmt.Errorf("mangle: read need_info facts: %w", err)
	}
	if len(rows) == 0 {
		return model.RoutingDecision{}, false, nil
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].rank < rows[j].rank })
	return model.NewNeedInfo(rows[0].missing, rows[0].question), true, nil
}

// renderFacts serializes the snapshot as Mangle unit clauses. Only
// recognized entity keys are rendered, in a fixed order, so malformed bags
// are ignored rather than rejected and output stays deterministic.
func renderFacts(intent model.Intent, entities model.EntityBag, constraints model.ConstraintBag) string {
	var b strings.Builder

	fmt.Fprintf(&b, "intent(/%s).\n", intent)

	for _, key := range model.RecognizedEntityKeys {
		if value, ok := entities.Get(key); ok {
			fmt.Fprintf(&b, "entity(/%s, %s).\n", key, quote(value))
		}
	}

	fmt.Fprintf(&b, "constraint(/%s, %s).\n", model.ConstraintSourcePreference, quote(constraints.SourcePreference()))
	fmt.Fprintf(&b, "constraint(/%s, %s).\n", model.ConstraintSafety, quote(constraints.Safety()))

	return b.String()
}

// quote renders a Mangle double-quoted string constant.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}

func numberArg(fact ast.Atom, i int) (int64, error) {
	c, ok := fact.Args[i].(ast.Constant)
	if !ok || c.Type != ast.NumberType {
		return 0, fmt.Errorf("mangle: %s arg %d is not a number", fact.Predicate.Symbol, i)
	}
	return c.NumValue, nil
}

func nameArg(fact ast.Atom, i int) (string, error) {
	c, ok := fact.Args[i].(ast.Constant)
	if !ok || c.Type != ast.NameType {
		return "", fmt.Errorf("mangle: %s arg %d is not a name", fact.Predicate.Symbol, i)
	}
	return strings.TrimPrefix(c.Symbol, "/"), nil
}

func stringArg(fact ast.Atom, i int) (string, error) {
	c, ok := fact.Args[i].(ast.Constant)
	if !ok || c.Type != ast.StringType {
		return "", fmt.Errorf("mangle: %s arg %d is not a string", fact.Predicate.Symbol, i)
	}
	return c.Symbol, nil
}
