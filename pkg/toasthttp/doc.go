// Package toasthttp provides HTTP presentation surfaces for the toast
// store: a DataStar SSE stream that live-patches the four corner
// containers after every store change, a static one-shot flash render
// for pages without a live update channel, and chi route wiring.
//
//	m := toast.NewManager(toast.WithFlashSource(src))
//
//	r := chi.NewRouter()
//	toasthttp.Mount(r, m, toasthttp.DefaultRenderer)
package toasthttp
