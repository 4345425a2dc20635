package entities

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kbsync/wikibase/pkg/wikibase/client"
	"github.com/kbsync/wikibase/pkg/wikibase/datatypes"
	"github.com/kbsync/wikibase/pkg/wikibase/errors"
	"github.com/kbsync/wikibase/pkg/wikibase/types"
	"github.com/kbsync/wikibase/pkg/wikibase/types/attributes"
)

// Kind discriminates the two entity variants of the store.
type Kind string

const (
	KindItem     Kind = "item"
	KindProperty Kind = "property"
)

// PageTitle returns the page title that addresses an entity of this
// kind in the store, used when deleting.
func (k Kind) PageTitle(entityID string) string {
	if k == KindProperty {
		return "Property:" + entityID
	}
	return "Item:" + entityID
}

func (k Kind) idPrefix() byte {
	if k == KindProperty {
		return 'P'
	}
	return 'Q'
}

// AttributeCodec decodes raw attribute payloads from an entity
// envelope into typed attribute objects. Implementations must tolerate
// empty payloads and produce empty but present attributes for them.
type AttributeCodec interface {
	UnmarshalLabel(entityID string, raw json.RawMessage) (*attributes.LabelSet, error)
	UnmarshalDescription(entityID string, raw json.RawMessage) (*attributes.DescriptionSet, error)
	UnmarshalAliases(entityID string, raw json.RawMessage) (*attributes.AliasSet, error)
	UnmarshalClaims(entityID string, raw json.RawMessage) (*attributes.ClaimSet, error)
}

const DefaultLanguage string = "en"

// Factory creates entity records bound to a shared synchronization
// context (store client, working language and attribute codec). The
// context is read only after construction, so records created by the
// same factory may be used concurrently.
type Factory struct {
	sync *synchronizer
}

func Language(code string) func(*Factory) {
	return func(f *Factory) {
		f.sync.language = code
	}
}

func Codec(codec AttributeCodec) func(*Factory) {
	return func(f *Factory) {
		f.sync.codec = codec
	}
}

func NewFactory(store client.StoreClient, options ...func(*Factory)) *Factory {
	f := &Factory{
		sync: &synchronizer{
			store:    store,
			language: DefaultLanguage,
			codec:    attributes.Codec{},
		},
	}

	for _, option := range options {
		option(f)
	}

	return f
}

func (f *Factory) NewItem() *Entity {
	return &Entity{kind: KindItem, sync: f.sync}
}

func (f *Factory) NewProperty() *Entity {
	return &Entity{kind: KindProperty, sync: f.sync}
}

// Entity is a local record of one remote entity. Its id is unset until
// the entity has been created or fetched, and each attribute is either
// absent (nil, not requested or not loaded) or present, where a present
// attribute may still be empty.
//
// A single instance must not be used from multiple goroutines, since
// Get mutates attribute fields in place.
type Entity struct {
	kind Kind
	id   string

	label       *attributes.LabelSet
	description *attributes.DescriptionSet
	aliases     *attributes.AliasSet
	claims      *attributes.ClaimSet

	// only set for the property kind
	dataType datatypes.Type

	sync *synchronizer
}

func (e *Entity) Kind() Kind { return e.kind }
func (e *Entity) ID() string { return e.id }

func (e *Entity) Label() *attributes.LabelSet             { return e.label }
func (e *Entity) Description() *attributes.DescriptionSet { return e.description }
func (e *Entity) Aliases() *attributes.AliasSet           { return e.aliases }
func (e *Entity) Claims() *attributes.ClaimSet            { return e.claims }

func (e *Entity) DataType() datatypes.Type { return e.dataType }

// Attributes returns the attributes that are currently present on this
// record, in a fixed order.
func (e *Entity) Attributes() []types.Attribute {
	present := make([]types.Attribute, 0, 4)

	if e.label != nil {
		present = append(present, e.label)
	}
	if e.description != nil {
		present = append(present, e.description)
	}
	if e.aliases != nil {
		present = append(present, e.aliases)
	}
	if e.claims != nil {
		present = append(present, e.claims)
	}

	return present
}

type CreateOption func(*createParams)

type createParams struct {
	dataType datatypes.Type
	explicit bool
}

// DataType selects the semantic value type of a new property. Only
// valid when creating properties.
func DataType(t datatypes.Type) CreateOption {
	return func(p *createParams) {
		p.dataType = t
		p.explicit = true
	}
}

// Create registers a new entity with the given label in the store and
// populates this record with the assigned id. The label is tagged with
// the factory's working language. Properties carry a data type, which
// defaults to StringValue and is validated locally before any remote
// call is made.
func (e *Entity) Create(ctx context.Context, label string, options ...CreateOption) error {
	if e.id != "" {
		return errors.NewPreconditionError(
			fmt.Sprintf("%s %s has already been persisted and cannot be created again", e.kind, e.id),
		)
	}

	params := &createParams{dataType: datatypes.StringValue}
	for _, option := range options {
		option(params)
	}

	if e.kind == KindItem && params.explicit {
		return errors.NewValidationError("data types only apply to properties")
	}

	payload := map[string]any{
		"labels": map[string]any{
			e.sync.language: map[string]string{
				"language": e.sync.language,
				"value":    label,
			},
		},
	}

	if e.kind == KindProperty {
		wireType, ok := datatypes.ToWire(params.dataType)
		if !ok {
			return errors.NewValidationError(
				fmt.Sprintf("%q is not a valid value for data type, must be one of %v", params.dataType, datatypes.Known()),
			)
		}
		payload["datatype"] = wireType
	}

	envelope, err := e.sync.createEntity(ctx, e.kind, payload)
	if err != nil {
		return err
	}

	e.id = envelope.ID
	if e.kind == KindProperty {
		e.dataType = params.dataType
	}

	e.label, err = e.sync.codec.UnmarshalLabel(e.id, envelope.Labels)
	if err != nil {
		return fmt.Errorf("could not decode created %s %s: %s (%w)", e.kind, e.id, err.Error(), errors.ErrEdit)
	}

	// a freshly created entity has no other attributes yet, but they
	// are known to be empty rather than not loaded
	e.description, _ = e.sync.codec.UnmarshalDescription(e.id, nil)
	e.aliases, _ = e.sync.codec.UnmarshalAliases(e.id, nil)
	e.claims, _ = e.sync.codec.UnmarshalClaims(e.id, nil)

	return nil
}

type FetchOption func(*fetchParams)

type fetchParams struct {
	ids        []string
	attributes []string
}

// WithIDs fetches the given entity ids instead of the id of the record
// that Get is invoked on.
func WithIDs(entityIDs ...string) FetchOption {
	return func(p *fetchParams) {
		p.ids = entityIDs
	}
}

// WithAttributes restricts the fetch to a subset of the entity's
// attributes.
func WithAttributes(attributeNames ...string) FetchOption {
	return func(p *fetchParams) {
		p.attributes = attributeNames
	}
}

// Attribute names accepted by WithAttributes.
const (
	AttributeLabels       string = "labels"
	AttributeDescriptions string = "descriptions"
	AttributeAliases      string = "aliases"
	AttributeClaims       string = "claims"
	AttributeDataType     string = "datatype"
	AttributeInfo         string = "info"
)

// Get fetches entity state from the store. Without WithIDs it resolves
// to this record's own id and requires it to be set. The returned
// records appear in the store's response order, which is not
// necessarily the requested order. The record whose id matches this
// record's own id is this record itself, updated in place; all others
// are independent records bound to the same synchronization context.
//
// A single missing id fails the whole call with ErrNotFound, so batch
// fetches are atomic or failed.
func (e *Entity) Get(ctx context.Context, options ...FetchOption) ([]*Entity, error) {
	params := &fetchParams{}
	for _, option := range options {
		option(params)
	}

	ids := params.ids
	if len(ids) == 0 {
		if e.id == "" {
			return nil, errors.NewPreconditionError(
				fmt.Sprintf("an entity id is required before get() can be used on this %s", e.kind),
			)
		}
		ids = []string{e.id}
	}

	return e.sync.fetchEntities(ctx, e, ids, params.attributes)
}

// Delete removes the entity from the store. The local record is left
// untouched and must be discarded by the caller.
func (e *Entity) Delete(ctx context.Context) error {
	if e.id == "" {
		return errors.NewPreconditionError(
			fmt.Sprintf("an entity id is required before delete() can be used on this %s", e.kind),
		)
	}

	return e.sync.removeEntity(ctx, e.kind, e.kind.PageTitle(e.id))
}

// Ref is the wire representation of a reference to an entity, as used
// in claim values.
type Ref struct {
	EntityType string `json:"entity-type"`
	NumericID  int    `json:"numeric-id"`
}

// Marshal converts this record into its wire reference. It fails when
// the id is unset or malformed, which indicates a programming error
// rather than a recoverable condition.
func (e *Entity) Marshal() (Ref, error) {
	if e.id == "" {
		return Ref{}, fmt.Errorf("cannot marshal %s without an entity id", e.kind)
	}

	if e.id[0] != e.kind.idPrefix() {
		return Ref{}, fmt.Errorf("malformed %s id %q", e.kind, e.id)
	}

	numericID, err := strconv.Atoi(e.id[1:])
	if err != nil || numericID < 0 {
		return Ref{}, fmt.Errorf("malformed %s id %q", e.kind, e.id)
	}

	return Ref{EntityType: string(e.kind), NumericID: numericID}, nil
}
