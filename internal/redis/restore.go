package redis

import (
	"github.com/hnimtadd/craft-redis/internal/redis/rdb"
	"github.com/sirupsen/logrus"
)

type RestoreStats struct {
	Keys    int
	Expires int
	// Expired counts keys dropped because their expiry had passed.
	Expired int
	// Skipped counts keys of databases SELECT can not reach.
	Skipped int
}

// Restore copies snap into the keyspace. It must be called before the
// controller serves any connection.
func (c *Controller) Restore(snap *rdb.Snapshot) RestoreStats {
	var stats RestoreStats
	now := c.now()
	for key, value := range snap.Metadata {
		c.metadata[key] = value
	}
	for _, idx := range snap.Indexes() {
		db := snap.Databases[idx]
		if idx >= c.options.Databases {
			c.logger.WithFields(logrus.Fields{
				"db":        idx,
				"keys":      db.Len(),
				"databases": c.options.Databases,
			}).Warn("snapshot database out of range, skipping")
			stats.Skipped += db.Len()
			continue
		}
		keyspace := c.db(idx)
		for key, data := range db.Values {
			value := Value{Type: ValueTypeString, Data: data}
			if expiresAt, ok := db.ExpiresAt(key); ok {
				if !now.Before(expiresAt) {
					stats.Expired++
					continue
				}
				value.Timeout = expiresAt
				stats.Expires++
			}
			keyspace.Put(key, &value)
			stats.Keys++
		}
		c.logger.WithFields(logrus.Fields{
			"db":   idx,
			"keys": db.Len(),
		}).Debug("restored database")
	}
	return stats
}
