package model

import "strings"

// Project is a leaf of the catalog hierarchy: one campaign or deliverable
// line under a brand.
type Project struct {
	Name string `json:"name"`
	Abbr string `json:"abbr"`
}

// Brand groups the projects of one brand within a client.
type Brand struct {
	Name     string    `json:"name"`
	Abbr     string    `json:"abbr"`
	Projects []Project `json:"projects"`
}

// Client is the top level of the catalog hierarchy.
type Client struct {
	Name   string  `json:"name"`
	Abbr   string  `json:"abbr"`
	Brands []Brand `json:"brands"`
}

// Option is one entry of a flat lookup list (mediums, materials).
type Option struct {
	Name string `json:"name"`
	Abbr string `json:"abbr"`
}

// Catalog holds the lookup data the generator works from: the
// client→brand→project hierarchy plus the medium and material lists.
// All slices preserve the order of first appearance in the source tables.
type Catalog struct {
	Clients   []Client `json:"clients"`
	Mediums   []Option `json:"mediums"`
	Materials []Option `json:"materials"`
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Clients:   []Client{},
		Mediums:   []Option{},
		Materials: []Option{},
	}
}

// IsEmpty reports whether the catalog has no hierarchy data at all.
func (c *Catalog) IsEmpty() bool {
	return c == nil || len(c.Clients) == 0
}

// AddHierarchyEntry merges one hierarchy table row into the catalog.
// Clients and brands are created on first sighting and never overwritten,
// so the first abbreviation seen for a name wins. A project is appended
// only when it has a name, is not "N/A", and belongs to a named brand;
// duplicates are kept in order of appearance.
func (c *Catalog) AddHierarchyEntry(clientName, clientAbbr, brandName, brandAbbr, projectName, projectAbbr string) {
	if clientName == "" {
		return
	}

	cl := c.Client(clientName)
	if cl == nil {
		c.Clients = append(c.Clients, Client{
			Name:   clientName,
			Abbr:   abbrOrName(clientAbbr, clientName),
			Brands: []Brand{},
		})
		cl = &c.Clients[len(c.Clients)-1]
	}

	if brandName == "" {
		return
	}

	br := cl.Brand(brandName)
	if br == nil {
		cl.Brands = append(cl.Brands, Brand{
			Name:     brandName,
			Abbr:     abbrOrName(brandAbbr, brandName),
			Projects: []Project{},
		})
		br = &cl.Brands[len(cl.Brands)-1]
	}

	if projectName == "" || strings.EqualFold(projectName, "N/A") {
		return
	}
	br.Projects = append(br.Projects, Project{
		Name: projectName,
		Abbr: abbrOrName(projectAbbr, projectName),
	})
}

// AddOption appends a lookup list entry, defaulting the abbreviation to
// the name. Entries without a name are dropped.
func AddOption(list []Option, name, abbr string) []Option {
	if name == "" {
		return list
	}
	return append(list, Option{Name: name, Abbr: abbrOrName(abbr, name)})
}

// Client returns a pointer to the client with the given name, or nil.
func (c *Catalog) Client(name string) *Client {
	if c == nil {
		return nil
	}
	for i := range c.Clients {
		if c.Clients[i].Name == name {
			return &c.Clients[i]
		}
	}
	return nil
}

// Brand returns a pointer to the brand with the given name, or nil.
func (cl *Client) Brand(name string) *Brand {
	if cl == nil {
		return nil
	}
	for i := range cl.Brands {
		if cl.Brands[i].Name == name {
			return &cl.Brands[i]
		}
	}
	return nil
}

// Project returns a pointer to the first project with the given name, or nil.
func (b *Brand) Project(name string) *Project {
	if b == nil {
		return nil
	}
	for i := range b.Projects {
		if b.Projects[i].Name == name {
			return &b.Projects[i]
		}
	}
	return nil
}

// ClientNames returns all client names for UI dropdowns.
func (c *Catalog) ClientNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.Clients))
	for i, cl := range c.Clients {
		names[i] = cl.Name
	}
	return names
}

// BrandNames returns the brand names under the given client.
// An unknown client yields an empty option set.
func (c *Catalog) BrandNames(client string) []string {
	cl := c.Client(client)
	if cl == nil {
		return nil
	}
	names := make([]string, len(cl.Brands))
	for i, b := range cl.Brands {
		names[i] = b.Name
	}
	return names
}

// ProjectNames returns the project names under the given client and brand.
func (c *Catalog) ProjectNames(client, brand string) []string {
	br := c.Client(client).Brand(brand)
	if br == nil {
		return nil
	}
	names := make([]string, len(br.Projects))
	for i, p := range br.Projects {
		names[i] = p.Name
	}
	return names
}

// OptionNames returns the names of a lookup list for UI dropdowns.
func OptionNames(list []Option) []string {
	names := make([]string, len(list))
	for i, o := range list {
		names[i] = o.Name
	}
	return names
}

// AbbrFor looks up the abbreviation for a name in a lookup list by exact
// match. The second return is false when the name is not present.
func AbbrFor(list []Option, name string) (string, bool) {
	for _, o := range list {
		if o.Name == name {
			return abbrOrName(o.Abbr, o.Name), true
		}
	}
	return "", false
}

// abbrOrName falls back to the display name when no abbreviation is set.
func abbrOrName(abbr, name string) string {
	if abbr == "" {
		return name
	}
	return abbr
}
