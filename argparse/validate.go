package argparse

// runValidation walks the bound path root to leaf, invoking each node's
// validation hook against that node's own decoded values. The first failing
// hook aborts the chain; hooks further down never run. A hook may mutate
// its node's values in place before the result is sealed.
func (p *BoundPath) runValidation() error {
	for _, fr := range p.frames {
		if fr.node.validate == nil {
			continue
		}
		if err := fr.node.validate(fr.values); err != nil {
			return validationError(fr.node, err)
		}
	}
	return nil
}
