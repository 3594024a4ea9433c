// Package metrics provides a Prometheus registry and exposition server for
// applications embedding the sharedredis packages.
//
// The Registry it creates is a plain prometheus.Registerer, so it plugs
// directly into the cache facade:
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		ServiceName:             "my-service",
//		EnableDefaultCollectors: true,
//	})
//
//	c := cache.New(cache.Config{Registerer: m.Registry}, client)
//	go m.Server.ListenAndServe()
//
// With fx, the module starts and stops the server with the application.
package metrics
