package carddef

// Set is one reduced card set: the unit of import and export.
type Set struct {
	Code  string `json:"code" yaml:"code" validate:"required"`
	Name  string `json:"name" yaml:"name" validate:"required"`
	Cards []Card `json:"cards" yaml:"cards" validate:"dive"`
}

// Card is one reduced card definition.
type Card struct {
	Code      string    `json:"code" yaml:"code" validate:"required"`
	Name      string    `json:"name" yaml:"name" validate:"required"`
	Type      string    `json:"type,omitempty" yaml:"type,omitempty"`
	Cost      int32     `json:"cost" yaml:"cost" validate:"min=0"`
	Text      string    `json:"text,omitempty" yaml:"text,omitempty"`
	Keywords  []string  `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Abilities []Ability `json:"abilities,omitempty" yaml:"abilities,omitempty" validate:"dive"`
}

// Ability is one triggered effect on a card.
type Ability struct {
	Trigger string `json:"trigger" yaml:"trigger" validate:"required"`
	Effect  string `json:"effect" yaml:"effect" validate:"required"`
	Amount  int32  `json:"amount,omitempty" yaml:"amount,omitempty"`
}
