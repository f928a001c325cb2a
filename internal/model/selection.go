package model

// Selection holds the current value of every generator field. Brand is only
// meaningful relative to the current client, and project relative to the
// current client and brand; the Set transitions below enforce that by
// clearing dependents when an ancestor changes.
type Selection struct {
	Client   string   `json:"client"`
	Brand    string   `json:"brand"`
	Project  string   `json:"project"`
	Medium   string   `json:"medium"`
	Material string   `json:"material"`
	Width    string   `json:"width"`
	Height   string   `json:"height"`
	Unit     string   `json:"unit"`
	Parts    []string `json:"parts"`
}

// NewSelection creates an empty selection with one free-text part slot.
func NewSelection() Selection {
	return Selection{
		Parts: []string{""},
	}
}

// SetClient selects a client and clears the dependent brand and project.
func (s *Selection) SetClient(name string) {
	s.Client = name
	s.Brand = ""
	s.Project = ""
}

// SetBrand selects a brand and clears the dependent project.
func (s *Selection) SetBrand(name string) {
	s.Brand = name
	s.Project = ""
}

// SetProject selects a project. No cascading effect.
func (s *Selection) SetProject(name string) {
	s.Project = name
}

// SetMedium selects a medium. No cascading effect.
func (s *Selection) SetMedium(name string) {
	s.Medium = name
}

// SetMaterial selects a material. No cascading effect.
func (s *Selection) SetMaterial(name string) {
	s.Material = name
}

// SetSize sets the width/height/unit fields. No cascading effect.
func (s *Selection) SetSize(width, height, unit string) {
	s.Width = width
	s.Height = height
	s.Unit = unit
}

// SetPart replaces the free-text part at index i. Out-of-range indices
// are ignored.
func (s *Selection) SetPart(i int, text string) {
	if i < 0 || i >= len(s.Parts) {
		return
	}
	s.Parts[i] = text
}

// AddPart appends an empty free-text part slot.
func (s *Selection) AddPart() {
	s.Parts = append(s.Parts, "")
}

// RemovePart deletes the part at index i, always keeping at least one slot.
func (s *Selection) RemovePart(i int) {
	if i < 0 || i >= len(s.Parts) {
		return
	}
	s.Parts = append(s.Parts[:i], s.Parts[i+1:]...)
	if len(s.Parts) == 0 {
		s.Parts = []string{""}
	}
}

// SetParts replaces all free-text parts with a copy of the given slice,
// keeping at least one slot.
func (s *Selection) SetParts(parts []string) {
	s.Parts = copyParts(parts)
}

// Clone returns a deep copy of the selection.
func (s Selection) Clone() Selection {
	cp := s
	cp.Parts = copyParts(s.Parts)
	return cp
}

// Restore overwrites every field from a snapshot, replaying the
// client→brand→project cascade in order so that the dependent fields are
// applied only after their parents and survive the cascade clearing.
func (s *Selection) Restore(snap Selection) {
	s.SetClient(snap.Client)
	s.SetBrand(snap.Brand)
	s.SetProject(snap.Project)
	s.SetMedium(snap.Medium)
	s.SetMaterial(snap.Material)
	s.SetSize(snap.Width, snap.Height, snap.Unit)
	s.SetParts(snap.Parts)
}

// copyParts deep-copies a parts slice, normalizing to one empty slot.
func copyParts(parts []string) []string {
	if len(parts) == 0 {
		return []string{""}
	}
	cp := make([]string, len(parts))
	copy(cp, parts)
	return cp
}
