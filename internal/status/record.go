package status

import "strings"

type EntryType uint8

const (
	Blob   EntryType = iota // ordinary file
	Tree                    // directory placeholder or nested repository
	Commit                  // submodule pointer
)

func (t EntryType) String() string {
	switch t {
	case Blob:
		return "blob"
	case Tree:
		return "tree"
	case Commit:
		return "commit"
	default:
		return "invalid"
	}
}

func (t EntryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Record is one path reported by a query. Records are built fresh for every
// query and never cached.
type Record struct {
	// Name is relative to the repository root and always uses '/'
	Name   string    `json:"name"`
	Type   EntryType `json:"type"`
	Status Status    `json:"status"`

	// only known for records coming from the diff query
	Permission string `json:"permission,omitempty"`
	Hash       string `json:"hash,omitempty"`
}

// IsDir reports whether the record is directory-like (tree or commit)
func (r *Record) IsDir() bool {
	return r.Type != Blob
}

func (r *Record) cleanName() string {
	return strings.TrimSuffix(r.Name, "/")
}

func (r *Record) baseName() string {
	name := r.cleanName()
	return name[strings.LastIndexByte(name, '/')+1:]
}

// dirKey is the directory a record is listed in: the record itself
// (with a trailing slash) for directory-like records.
func (r *Record) dirKey() string {
	name := r.cleanName()
	if r.IsDir() {
		return name + "/"
	}

	return name[:strings.LastIndexByte(name, '/')+1]
}

// Statuses projects records to a name to status mapping, skipping records without status.
func Statuses(records []*Record) map[string]Status {
	m := make(map[string]Status, len(records))
	for _, r := range records {
		if r.Status != None {
			m[r.Name] = r.Status
		}
	}
	return m
}
