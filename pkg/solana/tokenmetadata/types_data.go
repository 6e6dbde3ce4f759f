package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

const (
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxUriLength    = 200
	MaxCreatorLimit = 5
)

type Creator struct {
	Address  ed25519.PublicKey
	Verified bool
	// Share is a percentage; the shares of all creators should add up to 100.
	Share uint8
}

type Collection struct {
	Verified bool
	Key      ed25519.PublicKey
}

type UseMethod uint8

const (
	UseMethodBurn UseMethod = iota
	UseMethodMultiple
	UseMethodSingle
)

func (m UseMethod) String() string {
	switch m {
	case UseMethodBurn:
		return "burn"
	case UseMethodMultiple:
		return "multiple"
	case UseMethodSingle:
		return "single"
	}
	return "unknown"
}

type Uses struct {
	UseMethod UseMethod
	Remaining uint64
	Total     uint64
}

// Data is the v1 metadata payload. A nil Creators slice encodes as None,
// while a non-nil empty slice encodes as Some of an empty list.
type Data struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creators             []Creator
}

// DataV2 extends Data with an optional collection and uses configuration.
type DataV2 struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creators             []Creator
	Collection           *Collection
	Uses                 *Uses
}

// Validate checks the keys of the creators and, for DataV2, the collection.
func (d Data) Validate() error {
	return validateCreators(d.Creators)
}

func (d DataV2) Validate() error {
	if err := validateCreators(d.Creators); err != nil {
		return err
	}
	if d.Collection != nil {
		return d.Collection.Validate()
	}
	return nil
}

func (obj Creator) Validate() error {
	return errors.Wrap(ValidatePublicKey(obj.Address), "invalid creator address")
}

func (obj Collection) Validate() error {
	return errors.Wrap(ValidatePublicKey(obj.Key), "invalid collection key")
}

func validateCreators(creators []Creator) error {
	for i, creator := range creators {
		if err := creator.Validate(); err != nil {
			return errors.Wrapf(err, "creator %d", i)
		}
	}
	return nil
}

func (obj Creator) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := putKey(encoder, obj.Address); err != nil {
		return err
	}
	if err := encoder.WriteBool(obj.Verified); err != nil {
		return err
	}
	return encoder.WriteUint8(obj.Share)
}

func (obj *Creator) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if obj.Address, err = getKey(decoder); err != nil {
		return err
	}
	if obj.Verified, err = decoder.ReadBool(); err != nil {
		return err
	}
	obj.Share, err = decoder.ReadUint8()
	return err
}

func (obj Collection) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteBool(obj.Verified); err != nil {
		return err
	}
	return putKey(encoder, obj.Key)
}

func (obj *Collection) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if obj.Verified, err = decoder.ReadBool(); err != nil {
		return err
	}
	obj.Key, err = getKey(decoder)
	return err
}

func (obj Uses) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteUint8(uint8(obj.UseMethod)); err != nil {
		return err
	}
	if err := encoder.WriteUint64(obj.Remaining, bin.LE); err != nil {
		return err
	}
	return encoder.WriteUint64(obj.Total, bin.LE)
}

func (obj *Uses) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	method, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	if UseMethod(method) > UseMethodSingle {
		return errors.Errorf("invalid use method: %d", method)
	}
	obj.UseMethod = UseMethod(method)

	if obj.Remaining, err = decoder.ReadUint64(bin.LE); err != nil {
		return err
	}
	obj.Total, err = decoder.ReadUint64(bin.LE)
	return err
}

func (obj Data) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteString(obj.Name); err != nil {
		return err
	}
	if err := encoder.WriteString(obj.Symbol); err != nil {
		return err
	}
	if err := encoder.WriteString(obj.Uri); err != nil {
		return err
	}
	if err := encoder.WriteUint16(obj.SellerFeeBasisPoints, bin.LE); err != nil {
		return err
	}
	return putCreators(encoder, obj.Creators)
}

func (obj *Data) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if obj.Name, err = decoder.ReadString(); err != nil {
		return err
	}
	if obj.Symbol, err = decoder.ReadString(); err != nil {
		return err
	}
	if obj.Uri, err = decoder.ReadString(); err != nil {
		return err
	}
	if obj.SellerFeeBasisPoints, err = decoder.ReadUint16(bin.LE); err != nil {
		return err
	}
	obj.Creators, err = getCreators(decoder)
	return err
}

func (obj DataV2) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := Data{
		Name:                 obj.Name,
		Symbol:               obj.Symbol,
		Uri:                  obj.Uri,
		SellerFeeBasisPoints: obj.SellerFeeBasisPoints,
		Creators:             obj.Creators,
	}.MarshalWithEncoder(encoder)
	if err != nil {
		return err
	}

	if err := encoder.WriteOption(obj.Collection != nil); err != nil {
		return err
	}
	if obj.Collection != nil {
		if err := obj.Collection.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	}

	if err := encoder.WriteOption(obj.Uses != nil); err != nil {
		return err
	}
	if obj.Uses != nil {
		return obj.Uses.MarshalWithEncoder(encoder)
	}
	return nil
}

func (obj *DataV2) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var data Data
	if err := data.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	obj.Name = data.Name
	obj.Symbol = data.Symbol
	obj.Uri = data.Uri
	obj.SellerFeeBasisPoints = data.SellerFeeBasisPoints
	obj.Creators = data.Creators

	hasCollection, err := decoder.ReadOption()
	if err != nil {
		return err
	}
	obj.Collection = nil
	if hasCollection {
		obj.Collection = new(Collection)
		if err := obj.Collection.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}

	hasUses, err := decoder.ReadOption()
	if err != nil {
		return err
	}
	obj.Uses = nil
	if hasUses {
		obj.Uses = new(Uses)
		if err := obj.Uses.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	return nil
}

func putCreators(encoder *bin.Encoder, creators []Creator) error {
	if err := encoder.WriteOption(creators != nil); err != nil {
		return err
	}
	if creators == nil {
		return nil
	}

	if err := encoder.WriteLength(len(creators)); err != nil {
		return err
	}
	for _, creator := range creators {
		if err := creator.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	}
	return nil
}

func getCreators(decoder *bin.Decoder) ([]Creator, error) {
	ok, err := decoder.ReadOption()
	if err != nil || !ok {
		return nil, err
	}

	length, err := decoder.ReadLength()
	if err != nil {
		return nil, err
	}
	if length > MaxCreatorLimit {
		return nil, errors.Errorf("too many creators: %d", length)
	}

	creators := make([]Creator, length)
	for i := range creators {
		if err := creators[i].UnmarshalWithDecoder(decoder); err != nil {
			return nil, err
		}
	}
	return creators, nil
}
