package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// localPrefix marks identifiers minted by the local cache for records the
// remote provider has not confirmed yet. Remote identifiers are UUIDs, so
// they can never carry this prefix.
const localPrefix = "offline-"

// legacyLocalPrefix is accepted when classifying old snapshots.
const legacyLocalPrefix = "temp-"

// ID identifies a record in one of two namespaces: identifiers assigned by
// the remote provider on create, and local-only identifiers assigned while
// the remote was unreachable. Local-only IDs mark a record as pending sync.
type ID struct {
	value string
	local bool
}

// NewRemoteID mints a fresh remote-namespace identifier. The gateway uses
// it when creating records so the assigned ID is known before the insert
// round-trips.
func NewRemoteID() ID {
	return ID{value: uuid.NewString()}
}

// NewLocalID mints a local-only identifier for a record created while the
// remote provider could not confirm the write.
func NewLocalID(now time.Time) ID {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return ID{
		value: fmt.Sprintf("%s%d-%s", localPrefix, now.UnixMilli(), suffix),
		local: true,
	}
}

// ParseID classifies a raw identifier string into the remote or local
// namespace. The prefix convention is confined to this function and the
// codecs below; callers use IsLocal.
func ParseID(raw string) ID {
	if raw == "" {
		return ID{}
	}
	local := strings.HasPrefix(raw, localPrefix) || strings.HasPrefix(raw, legacyLocalPrefix)
	return ID{value: raw, local: local}
}

func (id ID) IsZero() bool  { return id.value == "" }
func (id ID) IsLocal() bool { return id.local }

func (id ID) String() string { return id.value }

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*id = ParseID(raw)
	return nil
}

// Value implements driver.Valuer so gorm stores the ID as text.
func (id ID) Value() (driver.Value, error) {
	if id.value == "" {
		return nil, nil
	}
	return id.value, nil
}

// Scan implements sql.Scanner.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ID{}
	case string:
		*id = ParseID(v)
	case []byte:
		*id = ParseID(string(v))
	default:
		return fmt.Errorf("cannot scan %T into models.ID", src)
	}
	return nil
}

// GormDataType tells gorm to map the type to a text column.
func (ID) GormDataType() string { return "text" }
