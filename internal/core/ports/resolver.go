package ports

// ModuleResolver resolves module requests the way the host bundler does.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ModuleResolver interface {
	// Resolve returns the absolute path request resolves to from the context directory.
	Resolve(request, context string) (string, bool)
}

// ResolverFactory builds resolvers for a set of resolution preferences.
type ResolverFactory interface {
	NewResolver(mainFields, extensions []string) ModuleResolver
}
