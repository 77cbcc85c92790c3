package stage

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ID identifies one of the seven developmental stages. Its integer value is
// the stage order used for grouping.
type ID int

const (
	PreWeaning ID = iota
	Early
	Mid
	Late
	Completion
	Toddler
	GeneralToddler
)

// Stage is the display record for a developmental stage.
type Stage struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	MealsPerDay string `json:"meals_per_day" yaml:"meals_per_day"`
	Description string `json:"description" yaml:"description"`
	HasMenu     bool   `json:"has_menu" yaml:"has_menu"`
}

type definition struct {
	key   string
	stage Stage
}

var definitions = [...]definition{
	PreWeaning: {"pre-weaning", Stage{
		ID:          PreWeaning,
		Name:        "모유/분유기",
		MealsPerDay: "수유",
		Description: "모유 또는 분유 수유 중입니다.",
		HasMenu:     false,
	}},
	Early: {"early", Stage{
		ID:          Early,
		Name:        "초기 이유식",
		MealsPerDay: "1일 1회",
		Description: "미음 위주의 초기 이유식 단계입니다.",
		HasMenu:     true,
	}},
	Mid: {"mid", Stage{
		ID:          Mid,
		Name:        "중기 이유식",
		MealsPerDay: "1일 1~2회",
		Description: "묽은 죽 위주의 중기 이유식 단계입니다.",
		HasMenu:     true,
	}},
	Late: {"late", Stage{
		ID:          Late,
		Name:        "후기 이유식",
		MealsPerDay: "1일 2~3회",
		Description: "된죽/무른밥의 후기 이유식 단계입니다.",
		HasMenu:     true,
	}},
	Completion: {"completion", Stage{
		ID:          Completion,
		Name:        "완료기 이유식",
		MealsPerDay: "1일 3회",
		Description: "진밥과 반찬의 완료기 이유식 단계입니다.",
		HasMenu:     true,
	}},
	Toddler: {"toddler", Stage{
		ID:          Toddler,
		Name:        "유아식",
		MealsPerDay: "1일 3회 + 간식",
		Description: "밥, 국, 반찬의 유아식 단계입니다.",
		HasMenu:     true,
	}},
	GeneralToddler: {"general-toddler", Stage{
		ID:          GeneralToddler,
		Name:        "일반 유아식",
		MealsPerDay: "1일 3회 + 간식",
		Description: "일반 유아식을 먹을 수 있는 단계입니다.",
		HasMenu:     true,
	}},
}

// All returns every stage ID in ascending order.
func All() []ID {
	ids := make([]ID, len(definitions))
	for i := range definitions {
		ids[i] = ID(i)
	}
	return ids
}

// Valid reports whether id is one of the seven known stages.
func (id ID) Valid() bool {
	return id >= PreWeaning && id <= GeneralToddler
}

// Order returns the stage order, or -1 for an unknown ID.
func (id ID) Order() int {
	if !id.Valid() {
		return -1
	}
	return int(id)
}

// Key returns the stable machine key used in JSON and on the command line.
func (id ID) Key() string {
	if !id.Valid() {
		return ""
	}
	return definitions[id].key
}

// String returns the display name of the stage.
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("stage(%d)", int(id))
	}
	return definitions[id].stage.Name
}

// Stage returns the display record for id.
func (id ID) Stage() Stage {
	if !id.Valid() {
		return Stage{ID: id}
	}
	return definitions[id].stage
}

// Canonical collapses stages that share an identical menu pool onto one key.
// It is only meaningful for grouping and merging decisions.
func (id ID) Canonical() ID {
	if id == GeneralToddler {
		return Toddler
	}
	return id
}

// MarshalJSON encodes the stage as its machine key.
func (id ID) MarshalJSON() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown stage %d", int(id))
	}
	return json.Marshal(id.Key())
}

// UnmarshalJSON accepts a machine key or a display name.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("stage must be a string: %w", err)
	}
	parsed, ok := Lookup(s)
	if !ok {
		return fmt.Errorf("unknown stage %q", s)
	}
	*id = parsed
	return nil
}

// MarshalYAML encodes the stage as its machine key.
func (id ID) MarshalYAML() (interface{}, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown stage %d", int(id))
	}
	return id.Key(), nil
}

// UnmarshalYAML accepts a machine key or a display name.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("stage must be a string: %w", err)
	}
	parsed, ok := Lookup(s)
	if !ok {
		return fmt.Errorf("unknown stage %q", s)
	}
	*id = parsed
	return nil
}

// Lookup resolves a machine key or a display name to a stage ID.
func Lookup(name string) (ID, bool) {
	for i, d := range definitions {
		if d.key == name || d.stage.Name == name {
			return ID(i), true
		}
	}
	return 0, false
}

// Order returns the stage order for a key or display name, -1 when unknown.
func Order(name string) int {
	id, ok := Lookup(name)
	if !ok {
		return -1
	}
	return id.Order()
}

// CanonicalName maps a stage name onto its canonical stage's display name.
// Unknown names are returned unchanged.
func CanonicalName(name string) string {
	id, ok := Lookup(name)
	if !ok {
		return name
	}
	return id.Canonical().String()
}

// Classify maps an age in whole months to its stage. Thresholds are checked
// in ascending order and the first match wins.
func Classify(months int) Stage {
	return ClassifyID(months).Stage()
}

// ClassifyID is Classify returning only the stage ID.
func ClassifyID(months int) ID {
	switch {
	case months <= 3:
		return PreWeaning
	case months <= 5:
		return Early
	case months <= 7:
		return Mid
	case months <= 9:
		return Late
	case months <= 11:
		return Completion
	case months <= 35:
		return Toddler
	default:
		return GeneralToddler
	}
}
