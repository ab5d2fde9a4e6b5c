// Package logger centraliza el logging estructurado de bookly sobre zap.
//
// Uso típico:
//
//	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
//	defer logger.Sync()
//
//	log := logger.Named("api")
//	log.Info("page fetched", logger.Endpoint("/books"), logger.Page(0))
//
// Los helpers de campos (Endpoint, Page, BookID, ...) mantienen los nombres
// de atributos consistentes en todo el binario.
package logger
