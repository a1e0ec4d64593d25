package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jlouisugbo/walking-challenge/internal/database"
)

const storeKey = "store"

// WithStore injects the database store into the request context so handlers
// can stay package-level functions.
func WithStore(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storeKey, store)
		c.Next()
	}
}

// GetStore retrieves the database store from the request context.
func GetStore(c *gin.Context) (*database.Store, bool) {
	val, exists := c.Get(storeKey)
	if !exists {
		return nil, false
	}
	store, ok := val.(*database.Store)
	return store, ok
}
