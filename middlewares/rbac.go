package middlewares

import (
	"fmt"
	"log"
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	mongodbadapter "github.com/casbin/mongodb-adapter/v3"
	"github.com/gin-gonic/gin"
)

var enforcer *casbin.Enforcer

// rbacModel is the request/policy model used when no model file is present
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// InitCasbin initializes the Casbin enforcer with a MongoDB-backed policy
// store and ensures the default policies exist
func InitCasbin(databaseURI string) error {
	adapter, err := mongodbadapter.NewAdapter(databaseURI)
	if err != nil {
		return fmt.Errorf("failed to create Casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return fmt.Errorf("failed to create Casbin model: %w", err)
	}

	enforcer, err = casbin.NewEnforcer(m, adapter)
	if err != nil {
		return fmt.Errorf("failed to create Casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	ensureDefaultPolicies()
	log.Println("Casbin RBAC initialized successfully")
	return nil
}

// ensureDefaultPolicies adds the built-in role permissions (idempotent)
func ensureDefaultPolicies() {
	defaultPolicies := []struct {
		role     string
		resource string
		action   string
	}{
		{"admin", "education", "create"},
		{"admin", "education", "update"},
		{"admin", "education", "delete"},
		{"admin", "user", "read"},
	}

	for _, policy := range defaultPolicies {
		exists, _ := enforcer.HasPolicy(policy.role, policy.resource, policy.action)
		if !exists {
			enforcer.AddPolicy(policy.role, policy.resource, policy.action)
			log.Printf("Added default policy: %s can %s %s", policy.role, policy.action, policy.resource)
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		log.Printf("Warning: Failed to save policies: %v", err)
	}
}

// RBACMiddleware checks whether the authenticated user's role permits the
// requested action. Must run after AuthMiddleware.
func RBACMiddleware(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found"})
			c.Abort()
			return
		}

		role := roleValue.(string)
		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			log.Printf("RBAC enforcement error for role=%s resource=%s action=%s: %v", role, resource, action, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Permission check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
