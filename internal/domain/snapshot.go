package domain

type StoreProvider string

const (
	StoreProviderMongoDB  StoreProvider = "mongodb"
	StoreProviderPostgres StoreProvider = "postgres"
)

// StoreCredentials address the remote document store. They live only in the local
// credential file and are never part of a snapshot.
type StoreCredentials struct {
	Provider StoreProvider `json:"provider"`
	URL      string        `json:"url"`
	Key      string        `json:"key,omitempty"`
}

func (c StoreCredentials) Configured() bool {
	return c.URL != "" && c.Key != ""
}

func (c StoreCredentials) Masked() StoreCredentials {
	out := c
	if len(c.Key) > 4 {
		out.Key = "****" + c.Key[len(c.Key)-4:]
	} else if c.Key != "" {
		out.Key = "****"
	}

	return out
}

// SnapshotKey is the single document id used for every save and load.
const SnapshotKey = "site_data"

type StoreSnapshot struct {
	Config     SiteConfig `json:"config"`
	Products   []Product  `json:"products"`
	Categories []string   `json:"categories"`
	Orders     []Order    `json:"orders"`
	Users      []User     `json:"users"`
	BlogPosts  []BlogPost `json:"blog_posts"`
	SavedAt    int64      `json:"saved_at"`
}
