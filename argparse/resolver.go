package argparse

// frame is one node of the bound path together with its decoded values.
type frame struct {
	node   *CommandNode
	values *Values
}

// BoundPath is the root-to-leaf sequence of resolved nodes with their
// decoded values for one parse invocation. It is rebuilt from scratch every
// call; nothing is shared across invocations.
type BoundPath struct {
	frames []*frame
}

// Nodes returns the resolved nodes, root first.
func (p *BoundPath) Nodes() []*CommandNode {
	nodes := make([]*CommandNode, len(p.frames))
	for i, fr := range p.frames {
		nodes[i] = fr.node
	}
	return nodes
}

// Leaf returns the addressed command.
func (p *BoundPath) Leaf() *CommandNode {
	return p.frames[len(p.frames)-1].node
}

// ValuesAt returns the decoded values of the i-th node on the path.
func (p *BoundPath) ValuesAt(i int) *Values {
	return p.frames[i].values
}

// decoded seals the path into the caller-owned result: the leaf's values
// merged over all ancestor bindings, root first so deeper bindings win.
func (p *BoundPath) decoded() *DecodedCommand {
	merged := NewValues()
	for _, fr := range p.frames {
		merged.merge(fr.values)
	}
	return &DecodedCommand{
		leaf:   p.Leaf(),
		nodes:  p.Nodes(),
		values: merged,
	}
}

// resolver drives the tree walk: it repeatedly binds options at the current
// node and matches bare tokens against child names, descending until the
// addressed command is found.
type resolver struct {
	root      *CommandNode
	tz        *tokenizer
	frames    []*frame
	leftovers []string // positional tokens awaiting leaf binding
}

func (r *resolver) cur() *frame {
	return r.frames[len(r.frames)-1]
}

func (r *resolver) push(node *CommandNode) {
	r.frames = append(r.frames, &frame{node: node, values: NewValues()})
}

// resolve tokenizes argv and walks the tree. On success every option along
// the path is bound, positionals are typed and attached to the leaf, and
// required parameters are verified.
func resolve(root *CommandNode, argv []string) (*BoundPath, error) {
	r := &resolver{root: root, tz: newTokenizer(argv)}
	r.push(root)

	for {
		tok, ok := r.tz.next()
		if !ok {
			break
		}
		var err error
		switch tok.kind {
		case tokenTerminator:
			continue
		case tokenLong:
			err = r.bindLong(tok)
		case tokenShort:
			err = r.bindShort(tok)
		case tokenBare:
			err = r.consumeBare(tok)
		}
		if err != nil {
			return nil, err
		}
	}
	return r.finalize()
}

// consumeBare decides what a positional candidate means at the current
// node. At a node with subcommands the first bare token addresses a child
// (exact or unambiguous prefix); a default child descends without the token
// being consumed, so the same token is re-evaluated one level down. Tokens
// after the -- terminator never address subcommands.
func (r *resolver) consumeBare(tok token) error {
	cur := r.cur().node
	if !tok.forced && len(cur.children) > 0 {
		if child, ok := cur.childByName[tok.raw]; ok {
			r.push(child)
			return nil
		}
		if tok.raw == "help" {
			return r.helpSubcommand()
		}
		if child := matchChild(cur, tok.raw); child != nil {
			r.push(child)
			return nil
		}
		if cur.defaultChild != nil {
			r.push(cur.defaultChild)
			return r.consumeBare(tok)
		}
		return unknownSubcommandError(cur, tok.raw)
	}
	r.leftovers = append(r.leftovers, tok.raw)
	return nil
}

// matchChild resolves a child name exactly, then by unambiguous prefix.
// An ambiguous prefix matches nothing, falling through to the default
// child or the unknown-subcommand failure.
func matchChild(node *CommandNode, name string) *CommandNode {
	if child, ok := node.childByName[name]; ok {
		return child
	}
	var match *CommandNode
	for _, child := range node.children {
		if hasPrefix(child.name, name) {
			if match != nil {
				return nil
			}
			match = child
		}
	}
	return match
}

// helpSubcommand handles the built-in 'help' subcommand: remaining bare
// tokens walk further down from the current node and the addressed node
// becomes the help target.
func (r *resolver) helpSubcommand() error {
	target := r.cur().node
	for {
		raw, ok := r.tz.nextValue()
		if !ok {
			break
		}
		if len(raw) > 0 && raw[0] == '-' {
			continue
		}
		child := matchChild(target, raw)
		if child == nil {
			return unknownSubcommandError(target, raw)
		}
		target = child
	}
	return &HelpRequest{Node: target}
}

// finalize is reached at end of input: descend any default-subcommand
// chain first, so a parent's missing required value surfaces only when no
// further descent is possible, then bind positionals, apply defaults and
// verify required parameters root to leaf.
func (r *resolver) finalize() (*BoundPath, error) {
	for r.cur().node.defaultChild != nil {
		r.push(r.cur().node.defaultChild)
	}

	if err := r.bindPositionals(); err != nil {
		return nil, err
	}
	r.applyDefaults()
	if err := r.checkRequired(); err != nil {
		return nil, err
	}
	return &BoundPath{frames: r.frames}, nil
}

// bindPositionals types the leftover tokens against the leaf's positional
// specs, left to right: fixed-count specs take their exact token count
// before the next spec begins, a trailing variadic takes the rest.
func (r *resolver) bindPositionals() error {
	leaf := r.cur()
	toks := r.leftovers
	idx := 0

	for _, spec := range leaf.node.positionals {
		name := spec.Name()
		switch spec.Arity.Kind {
		case ArityZeroOrOne, ArityExactlyOne:
			if idx >= len(toks) {
				continue // required check runs after defaults
			}
			v, err := spec.Parse(toks[idx])
			if err != nil {
				return conversionError(leaf.node, spec, toks[idx])
			}
			leaf.values.Set(name, v)
			idx++
		case ArityExactlyN:
			if len(toks)-idx < spec.Arity.N {
				return missingValueError(leaf.node, spec)
			}
			for k := 0; k < spec.Arity.N; k++ {
				v, err := spec.Parse(toks[idx])
				if err != nil {
					return conversionError(leaf.node, spec, toks[idx])
				}
				leaf.values.appendValue(name, v)
				idx++
			}
			leaf.values.bump(name)
		case ArityZeroOrMore:
			for idx < len(toks) {
				v, err := spec.Parse(toks[idx])
				if err != nil {
					return conversionError(leaf.node, spec, toks[idx])
				}
				leaf.values.appendValue(name, v)
				idx++
			}
		}
	}

	if idx < len(toks) {
		return newParseError(ErrorTypeUnexpectedArgument, leaf.node,
			"unexpected argument '%s'", toks[idx])
	}
	return nil
}

// applyDefaults fills unbound parameters that declare a default, on every
// node of the path.
func (r *resolver) applyDefaults() {
	for _, fr := range r.frames {
		for _, spec := range fr.node.specs {
			if spec.HasDefault && !fr.values.Has(spec.Name()) {
				fr.values.Set(spec.Name(), spec.Default)
			}
		}
		for _, spec := range fr.node.positionals {
			if spec.HasDefault && !fr.values.Has(spec.Name()) {
				fr.values.Set(spec.Name(), spec.Default)
			}
		}
	}
}

// checkRequired surfaces deferred missing-value failures, root to leaf, now
// that no default subcommand can supply them anymore.
func (r *resolver) checkRequired() error {
	for _, fr := range r.frames {
		for _, spec := range fr.node.specs {
			if spec.Arity.required() && !fr.values.Has(spec.Name()) {
				return missingValueError(fr.node, spec)
			}
		}
		for _, spec := range fr.node.positionals {
			if spec.Arity.required() && !fr.values.Has(spec.Name()) {
				return missingValueError(fr.node, spec)
			}
		}
	}
	return nil
}
