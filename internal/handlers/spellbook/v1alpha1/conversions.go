package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/spellbook-api/internal/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

// ToStruct encodes a request or response value as a google.protobuf.Struct
func ToStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to build struct message")
	}
	return out, nil
}

// FromStruct decodes a google.protobuf.Struct into v. Unknown fields and
// mistyped values are rejected as invalid arguments. A nil struct leaves v
// untouched.
func FromStruct(s *structpb.Struct, v any) error {
	return decodeStruct(s, v, true)
}

func decodeStruct(s *structpb.Struct, v any, strict bool) error {
	if s == nil {
		return nil
	}

	data, err := protojson.Marshal(s)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return errors.InvalidArgumentf("malformed message: %v", err)
	}
	return nil
}

func toQuery(req *QuerySpellsRequest) catalog.Query {
	q := catalog.Query{
		Classes:       convertStrings[dnd5e.Class](req.Classes),
		Levels:        req.Levels,
		Schools:       convertStrings[dnd5e.School](req.Schools),
		AttackTypes:   convertStrings[dnd5e.AttackType](req.AttackTypes),
		SaveTypes:     convertStrings[dnd5e.Ability](req.SaveTypes),
		Concentration: req.Concentration,
		Ritual:        req.Ritual,
		CastingTimes:  convertStrings[dnd5e.CastingTime](req.CastingTimes),
		Name:          req.Name,
		DamageTypes:   convertStrings[dnd5e.DamageType](req.DamageTypes),
		Conditions:    convertStrings[dnd5e.Condition](req.Conditions),
		Durations:     convertStrings[dnd5e.Duration](req.Durations),
	}
	if req.Components != nil {
		q.Components = &catalog.ComponentsQuery{
			Material: req.Components.Material,
			Somatic:  req.Components.Somatic,
			Verbal:   req.Components.Verbal,
		}
	}
	return q
}

func convertStrings[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

func spellsResponse(spells []*dnd5e.Spell, version string) *SpellsResponse {
	if spells == nil {
		spells = []*dnd5e.Spell{}
	}
	return &SpellsResponse{
		Spells:  spells,
		Total:   len(spells),
		Version: version,
	}
}
