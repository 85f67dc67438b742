package cookie

import (
	"github.com/gin-gonic/gin"
)

// Session issuance belongs to the auth collaborator; this service only reads
// the cookie it sets.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
