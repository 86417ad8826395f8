package mbase

// Clone returns a deep copy of the metadata. Registries hand out clones so
// callers can never mutate a registered codec's alias set.
func (m Metadata) Clone() Metadata {
	aliases := make([]string, len(m.Aliases))
	copy(aliases, m.Aliases)
	m.Aliases = aliases
	return m
}

// Clone returns a deep copy of the candidate.
func (c Candidate) Clone() Candidate {
	reasons := make([]string, len(c.Reasons))
	copy(reasons, c.Reasons)
	warnings := make([]string, len(c.Warnings))
	copy(warnings, c.Warnings)
	c.Reasons = reasons
	c.Warnings = warnings
	return c
}
