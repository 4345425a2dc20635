package entities

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/kbsync/wikibase/pkg/wikibase/client"
	"github.com/kbsync/wikibase/pkg/wikibase/datatypes"
	"github.com/kbsync/wikibase/pkg/wikibase/errors"
)

// synchronizer is the only part of the package that talks to the
// store client. It translates transport and protocol failures into
// the domain error taxonomy and reconciles batch results against the
// record that initiated the call.
type synchronizer struct {
	store    client.StoreClient
	codec    AttributeCodec
	language string
}

// entityEnvelope is the raw wire record for one entity. Every field is
// independently optional; Missing is non-nil when the store marks the
// requested id as nonexistent.
type entityEnvelope struct {
	Missing      json.RawMessage `json:"missing"`
	ID           string          `json:"id"`
	DataType     string          `json:"datatype"`
	Labels       json.RawMessage `json:"labels"`
	Descriptions json.RawMessage `json:"descriptions"`
	Aliases      json.RawMessage `json:"aliases"`
	Claims       json.RawMessage `json:"claims"`
}

func (s *synchronizer) createEntity(ctx context.Context, kind Kind, payload map[string]any) (*entityEnvelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not create %s: %s (%w)", kind, err.Error(), errors.ErrEdit)
	}

	raw, err := s.store.CreateEntity(ctx, string(kind), data)
	if err != nil {
		return nil, fmt.Errorf("could not create %s: %s (%w)", kind, err.Error(), errors.ErrEdit)
	}

	response := struct {
		Entity *entityEnvelope `json:"entity"`
	}{}

	if err := json.Unmarshal(raw, &response); err != nil || response.Entity == nil || response.Entity.ID == "" {
		return nil, fmt.Errorf("malformed create response for %s: %s (%w)", kind, truncate(raw), errors.ErrEdit)
	}

	return response.Entity, nil
}

func (s *synchronizer) fetchEntities(ctx context.Context, caller *Entity, entityIDs []string, attributeNames []string) ([]*Entity, error) {
	raw, err := s.store.FetchEntities(ctx, entityIDs, attributeNames)
	if err != nil {
		return nil, fmt.Errorf("could not get %s: %s (%w)", caller.kind, err.Error(), errors.ErrSearch)
	}

	response := struct {
		Success  *int            `json:"success"`
		Entities json.RawMessage `json:"entities"`
	}{}

	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("malformed response for %s: %s (%w)", caller.kind, err.Error(), errors.ErrSearch)
	}

	if response.Success == nil || *response.Success != 1 {
		return nil, fmt.Errorf("unsuccessful response for %s: %s (%w)", caller.kind, truncate(raw), errors.ErrSearch)
	}

	envelopes, err := decodeEnvelopes(response.Entities)
	if err != nil {
		return nil, fmt.Errorf("malformed entities in response for %s: %s (%w)", caller.kind, err.Error(), errors.ErrSearch)
	}

	results := make([]*Entity, 0, len(envelopes))

	for _, kenv := range envelopes {
		if kenv.envelope.Missing != nil {
			return nil, errors.NewNotFoundError(
				fmt.Sprintf("no %s found with the entity id %q", caller.kind, kenv.key),
			)
		}

		// the caller's own record is updated in place so that the
		// handle the caller already holds reflects the fetched state;
		// every other id gets an independent record that shares
		// nothing mutable with the caller
		target := caller
		if kenv.key != caller.id {
			target = &Entity{kind: caller.kind, sync: s}
		}

		if err := s.populate(target, kenv.envelope); err != nil {
			return nil, err
		}

		results = append(results, target)
	}

	log := logging.GetFromContext(ctx)
	log.Debug("fetched entities", "kind", string(caller.kind), "count", len(results))

	return results, nil
}

func (s *synchronizer) removeEntity(ctx context.Context, kind Kind, title string) error {
	err := s.store.RemoveEntity(ctx, title)
	if err != nil {
		return fmt.Errorf("could not delete %s: %s (%w)", kind, err.Error(), errors.ErrEdit)
	}

	return nil
}

func (s *synchronizer) populate(e *Entity, env *entityEnvelope) error {
	if env.ID == "" {
		return fmt.Errorf("entity envelope without an id (%w)", errors.ErrSearch)
	}

	// an id, once assigned, is never reassigned to a different one
	if e.id != "" && e.id != env.ID {
		return fmt.Errorf("envelope id %q does not match entity id %q (%w)", env.ID, e.id, errors.ErrSearch)
	}

	e.id = env.ID

	if len(env.Labels) > 0 {
		label, err := s.codec.UnmarshalLabel(e.id, env.Labels)
		if err != nil {
			return fmt.Errorf("%s (%w)", err.Error(), errors.ErrSearch)
		}
		e.label = label
	}

	if e.kind == KindProperty && env.DataType != "" {
		dataType, ok := datatypes.FromWire(env.DataType)
		if !ok {
			// silently dropping an unknown datatype would leave the
			// property without usable type information
			return fmt.Errorf("unknown datatype %q on %s (%w)", env.DataType, e.id, errors.ErrSearch)
		}
		e.dataType = dataType
	}

	if len(env.Descriptions) > 0 {
		description, err := s.codec.UnmarshalDescription(e.id, env.Descriptions)
		if err != nil {
			return fmt.Errorf("%s (%w)", err.Error(), errors.ErrSearch)
		}
		e.description = description
	}

	if len(env.Aliases) > 0 {
		aliases, err := s.codec.UnmarshalAliases(e.id, env.Aliases)
		if err != nil {
			return fmt.Errorf("%s (%w)", err.Error(), errors.ErrSearch)
		}
		e.aliases = aliases
	}

	if len(env.Claims) > 0 {
		claims, err := s.codec.UnmarshalClaims(e.id, env.Claims)
		if err != nil {
			return fmt.Errorf("%s (%w)", err.Error(), errors.ErrSearch)
		}
		e.claims = claims
	}

	return nil
}

type keyedEnvelope struct {
	key      string
	envelope *entityEnvelope
}

// decodeEnvelopes walks the entities object with a token decoder so
// that the store's response order is preserved. Unmarshaling into a Go
// map would lose it.
func decodeEnvelopes(raw json.RawMessage) ([]keyedEnvelope, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no entities in response")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	t, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("entities is not an object")
	}

	envelopes := []keyedEnvelope{}

	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", t)
		}

		env := &entityEnvelope{}
		if err := dec.Decode(env); err != nil {
			return nil, err
		}

		envelopes = append(envelopes, keyedEnvelope{key: key, envelope: env})
	}

	return envelopes, nil
}

func truncate(raw []byte) string {
	const max = 512
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
