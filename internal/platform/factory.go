package platform

import (
	"context"

	"github.com/aretw0/mulch/pkg/adapters/fs"
	"github.com/aretw0/mulch/pkg/core"
)

// New wires a core.Service on top of a vault at the given path.
//
//	svc, err := mulch.New("./path/to/vault", mulch.WithMustExist(true))
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	vault := o.vault
	if vault == nil {
		vault = fs.NewStore(fs.Config{
			Path:         path,
			MustExist:    boolOpt(o, "must_exist"),
			Logger:       o.logger,
			SystemDir:    stringOpt(o, "system_dir"),
			ErrorHandler: errorHandlerOpt(o),
		})
	}

	readOnly := boolOpt(o, "read_only")
	if !readOnly {
		if err := vault.Initialize(context.Background()); err != nil {
			return nil, err
		}
	}

	svc := core.NewService(vault, o.logger)

	// The config file can force read-only even when the option is absent.
	if store, ok := vault.(*fs.Store); ok && !readOnly {
		cfg, err := store.LoadVaultConfig()
		if err != nil {
			return nil, err
		}
		readOnly = cfg.ReadOnly
	}
	svc.SetReadOnly(readOnly)

	return svc, nil
}

// Init sets up a vault without wrapping it in a service.
func Init(path string, opts ...Option) (core.Vault, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.vault != nil {
		return o.vault, o.vault.Initialize(context.Background())
	}

	store := fs.NewStore(fs.Config{
		Path:         path,
		MustExist:    boolOpt(o, "must_exist"),
		Logger:       o.logger,
		SystemDir:    stringOpt(o, "system_dir"),
		ErrorHandler: errorHandlerOpt(o),
	})
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func boolOpt(o *options, key string) bool {
	v, _ := o.config[key].(bool)
	return v
}

func stringOpt(o *options, key string) string {
	v, _ := o.config[key].(string)
	return v
}

func errorHandlerOpt(o *options) func(error) {
	v, _ := o.config["watcher_error_handler"].(func(error))
	return v
}
