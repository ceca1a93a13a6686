package controllers

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware caps each client ip to a small burst, entries for
// quiet visitors are dropped after the ttl.
func RateLimitMiddleware() gin.HandlerFunc {
	apiRate := 10
	ttl := 3 * time.Minute

	type visitor struct {
		requests int
		lastSeen time.Time
	}

	var (
		mutex    sync.Mutex
		visitors = make(map[string]*visitor)
	)

	//sweep stale visitors in the background
	go func() {
		for {
			time.Sleep(ttl)
			mutex.Lock()
			for ip, v := range visitors {
				if time.Since(v.lastSeen) > ttl {
					delete(visitors, ip)
				}
			}
			mutex.Unlock()
		}
	}()

	return func(c *gin.Context) {
		visitorIP := c.ClientIP()
		mutex.Lock()
		visitorData, exists := visitors[visitorIP]
		if !exists {
			visitorData = &visitor{}
			visitors[visitorIP] = visitorData
		}
		visitorData.lastSeen = time.Now()
		if visitorData.requests >= apiRate {
			mutex.Unlock()
			message := fmt.Sprintf("rate limit exceeded for IP: %v", visitorIP)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":     false,
				"message":    message,
				"error_code": http.StatusTooManyRequests,
			})
			return
		}
		visitorData.requests++
		mutex.Unlock()

		c.Next()

		//release the slot after a second so steady clients keep flowing
		go func() {
			time.Sleep(time.Second)
			mutex.Lock()
			if visitorData.requests > 0 {
				visitorData.requests--
			}
			mutex.Unlock()
		}()
	}
}
