// catalog.go - the Catalog: the full set of OptionInfo entries for one
// program, keyed by name and by short name.
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

// Catalog owns every OptionInfo known to a program.
type Catalog struct {
	env        *OptionEnvironment
	byName     map[string]*OptionInfo
	byShort    map[rune]*OptionInfo
	order      []*OptionInfo
	linked     bool
	hasDefault string // name of the option currently marked DefaultOption, "" if none
}

// New returns an empty Catalog bound to env. Most callers want
// [Construct] instead.
func New(env *OptionEnvironment) *Catalog {
	return &Catalog{
		env:     env,
		byName:  make(map[string]*OptionInfo),
		byShort: make(map[rune]*OptionInfo),
	}
}

// Construct builds a Catalog from env: it walks env.Options, merges in
// the system options when env.Flags includes SystemOptions, loads
// env.OptionsFilesDirectory/env.ProjectName+".ini" when set, and links
// aliases. The returned Catalog is ready for parsing.
func Construct(env *OptionEnvironment) (*Catalog, error) {
	c := New(env)
	for i := range env.Options {
		if err := c.Insert(env.Options[i]); err != nil {
			return nil, err
		}
	}
	if _, ok := c.byName[SectionRegistryOptionName]; !ok {
		if err := c.Insert(sectionRegistryOption()); err != nil {
			return nil, err
		}
	}
	if env.Flags&SystemOptions != 0 {
		for _, sys := range systemOptions(env) {
			if _, ok := c.byName[sys.Name]; ok {
				continue // caller's definition wins
			}
			if _, taken := c.byShort[sys.ShortName]; taken && sys.ShortName != 0 {
				sys.ShortName = 0 // so does the caller's short name
			}
			if err := c.Insert(sys); err != nil {
				return nil, err
			}
		}
	}
	if env.OptionsFilesDirectory != "" {
		if err := c.LoadIni(env.OptionsFilesDirectory, env.ProjectName, 1, c.env.maxNamespaces()); err != nil {
			return nil, err
		}
	}
	if err := c.LinkAliases(); err != nil {
		return nil, err
	}
	return c, nil
}

// Insert validates and adds one OptionInfo to the catalog. It is the
// building block used by Construct, LoadIni, and dynamic-option
// registration during parsing.
func (c *Catalog) Insert(o OptionInfo) error {
	if err := ValidateName(o.Name, c.env.maxNamespaces()); err != nil {
		return err
	}
	if _, ok := c.byName[o.Name]; ok {
		return &ErrDuplicateOptionName{Name: o.Name}
	}
	if o.ShortName != 0 {
		if _, ok := c.byShort[o.ShortName]; ok {
			return &ErrDuplicateShortName{ShortName: o.ShortName}
		}
	}
	if o.Flags.Has(DefaultOption) {
		if o.Flags.Has(Flag) {
			return &ErrFlagAndDefaultOption{Name: o.Name}
		}
		if c.hasDefault != "" {
			return &ErrMultipleDefaultOptions{First: c.hasDefault, Second: o.Name}
		}
	}
	if o.IsAlias() && (o.Help != "" || o.HasDefaultValue || o.Validator != nil) {
		return &ErrAliasWithOwnSchema{Name: o.Name}
	}
	entry := o
	c.byName[entry.Name] = &entry
	if entry.ShortName != 0 {
		c.byShort[entry.ShortName] = &entry
	}
	if entry.Flags.Has(DefaultOption) {
		c.hasDefault = entry.Name
	}
	c.order = append(c.order, &entry)
	return nil
}

// LinkAliases resolves every AliasTarget name to its OptionInfo pointer.
// It must be called once, after the full option set is known and before
// any parsing happens.
func (c *Catalog) LinkAliases() error {
	for _, o := range c.order {
		if !o.IsAlias() {
			continue
		}
		target, ok := c.byName[o.AliasTarget]
		if !ok {
			return &ErrUnresolvedAlias{Name: o.Name, Target: o.AliasTarget}
		}
		o.resolvedAlias = target
	}
	c.linked = true
	return nil
}

// Lookup resolves a long option name (underscore/hyphen equivalent) to
// its OptionInfo, following alias links. followAlias=false returns the
// alias entry itself instead of its target.
func (c *Catalog) Lookup(name string, followAlias bool) *OptionInfo {
	o, ok := c.byName[NormalizeName(name)]
	if !ok {
		o, ok = c.byName[name]
	}
	if !ok {
		norm := NormalizeName(name)
		for _, e := range c.order {
			if NormalizeName(e.Name) == norm {
				o, ok = e, true
				break
			}
		}
		if !ok {
			return nil
		}
	}
	if followAlias && o.IsAlias() {
		return o.ResolvedTarget()
	}
	return o
}

// LookupShort resolves a short name to its OptionInfo, following alias
// links.
func (c *Catalog) LookupShort(r rune) *OptionInfo {
	o, ok := c.byShort[r]
	if !ok {
		return nil
	}
	if o.IsAlias() {
		return o.ResolvedTarget()
	}
	return o
}

// DefaultOption returns the catalog's DEFAULT_OPTION entry, or nil if
// none was declared.
func (c *Catalog) DefaultOption() *OptionInfo {
	if c.hasDefault == "" {
		return nil
	}
	return c.byName[c.hasDefault]
}

// SetShortName assigns a short name to an already-registered long
// option. It is a catalog-mutation operation, valid before parsing
// begins.
func (c *Catalog) SetShortName(name string, r rune) error {
	o := c.Lookup(name, false)
	if o == nil {
		return &ErrUnknownOption{Name: name}
	}
	if r != 0 {
		if existing, ok := c.byShort[r]; ok && existing != o {
			return &ErrDuplicateShortName{ShortName: r}
		}
	}
	if o.ShortName != 0 {
		delete(c.byShort, o.ShortName)
	}
	o.ShortName = r
	if r != 0 {
		c.byShort[r] = o
	}
	return nil
}

// Options returns every entry in declaration order, aliases included.
func (c *Catalog) Options() []*OptionInfo {
	out := make([]*OptionInfo, len(c.order))
	copy(out, c.order)
	return out
}

// Environment returns the OptionEnvironment the catalog was built from.
func (c *Catalog) Environment() *OptionEnvironment {
	return c.env
}

// Linked reports whether LinkAliases has run.
func (c *Catalog) Linked() bool {
	return c.linked
}
