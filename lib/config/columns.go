package config

import (
	"fmt"

	"github.com/artie-labs/materializer/lib/config/constants"
	"github.com/artie-labs/materializer/lib/materialize"
	"github.com/artie-labs/materializer/lib/timeunit"
	"github.com/artie-labs/materializer/lib/vector"
)

type Column struct {
	Name string               `yaml:"name"`
	Type constants.ColumnType `yaml:"type"`
	// Units is only used by difftime columns, defaults to seconds.
	Units string `yaml:"units"`
}

func (c Column) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is empty")
	}

	if !constants.IsValidColumnType(c.Type) {
		return fmt.Errorf("unsupported column type: %q", c.Type)
	}

	if c.Type != constants.Difftime && c.Units != "" {
		return fmt.Errorf("units can only be set on %s columns", constants.Difftime)
	}

	if _, err := timeunit.ParseUnit(c.Units); err != nil {
		return err
	}

	return nil
}

func (c Column) PType() (materialize.PTypeView, error) {
	if !constants.IsValidColumnType(c.Type) {
		return materialize.PTypeView{}, fmt.Errorf("unsupported column type: %q", c.Type)
	}

	if c.Type == constants.Difftime {
		units, err := timeunit.ParseUnit(c.Units)
		if err != nil {
			return materialize.PTypeView{}, err
		}

		return materialize.PTypeView{Kind: vector.Float64, Difftime: true, Units: units}, nil
	}

	kind, err := vector.ParseKind(string(c.Type))
	if err != nil {
		return materialize.PTypeView{}, err
	}

	return materialize.PTypeView{Kind: kind}, nil
}
