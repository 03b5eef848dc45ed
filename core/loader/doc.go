// Package loader registers HTTP features with the fiber application.
//
// A feature is anything with a name, an enabled switch and a Load hook that mounts its
// routes. The catalog registers one feature per source (bgg, csi, mm) plus integrity:
//
//	mgr := loader.NewManager()
//	mgr.Register(bgg.NewFeature(pipeline, store, log))
//	if err := mgr.LoadAll(app); err != nil { ... }
//
// Disabled features are skipped; the first Load error aborts LoadAll.
package loader
