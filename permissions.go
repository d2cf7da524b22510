package actionkit

import (
	"context"
	"errors"
	"fmt"
)

// PermissionFunc adapts a plain function to the Permission interface.
type PermissionFunc func(ctx context.Context, svc *Service, data any) error

// Check implements Permission.
func (f PermissionFunc) Check(ctx context.Context, svc *Service, data any) error {
	return f(ctx, svc, data)
}

// StaticPermissions returns a resolver yielding the same permission list on
// every call. Calling it with no arguments yields an explicit empty list,
// which means "always allow".
func StaticPermissions(perms ...Permission) PermissionResolver {
	static := make([]Permission, len(perms))
	copy(static, perms)
	return func(svc *Service, data any) []Permission {
		out := make([]Permission, len(static))
		copy(out, static)
		return out
	}
}

// AnyOf combines permissions so the check passes when at least one of them
// allows the invocation. With no permissions it always allows. When all deny,
// the combined error joins the individual denials.
func AnyOf(perms ...Permission) Permission {
	return PermissionFunc(func(ctx context.Context, svc *Service, data any) error {
		if len(perms) == 0 {
			return nil
		}
		denials := make([]error, 0, len(perms))
		for _, p := range perms {
			err := p.Check(ctx, svc, data)
			if err == nil {
				return nil
			}
			denials = append(denials, err)
		}
		return errors.Join(denials...)
	})
}

// AllOf combines permissions so the check passes only when every one of them
// allows the invocation. The first denial wins; later permissions are not
// evaluated.
func AllOf(perms ...Permission) Permission {
	return PermissionFunc(func(ctx context.Context, svc *Service, data any) error {
		for _, p := range perms {
			if err := p.Check(ctx, svc, data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Deny builds the error a Permission returns to deny an invocation with a
// human-readable reason. Permissions are free to return any error instead;
// the dispatcher treats every non-nil check result as a denial.
func Deny(reason string) error {
	return NewError(ErrPermissionDenied, reason)
}

// permissionName reports a stable name for a permission, for error context
// and logs. Permissions may implement interface{ Name() string }; otherwise
// the concrete type name is used.
func permissionName(p Permission) string {
	if named, ok := p.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", p)
}
