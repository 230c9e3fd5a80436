// Command schema imprime el DDL del registro de tenants y de las tablas de negocio de un tenant.
// El servicio nunca crea schemas: la salida se revisa y se aplica con psql.
//
//	go run ./cmd/schema --registry --tenant ferreteria_sur | psql "$DATABASE_URL"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
)

func main() {
	flags := pflag.NewFlagSet("schema", pflag.ExitOnError)
	flags.String("tenant", "", "namespace (schema) del tenant")
	flags.Bool("registry", false, "incluir las tablas de registro (tenants y users)")
	flags.String("registry-schema", "public", "schema del registro de tenants")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	v.AutomaticEnv()
	// TENANT_REGISTRY_SCHEMA como en la API; el flag tiene prioridad si se informa
	_ = v.BindEnv("registry-schema", "TENANT_REGISTRY_SCHEMA")
	_ = v.BindPFlags(flags)

	if err := run(v); err != nil {
		fmt.Fprintln(os.Stderr, "schema:", err)
		os.Exit(1)
	}
}

func run(v *viper.Viper) error {
	name := v.GetString("tenant")
	withRegistry := v.GetBool("registry")
	if name == "" && !withRegistry {
		return fmt.Errorf("indicar --tenant y/o --registry")
	}
	if withRegistry {
		fmt.Println(postgres.RegistryDDL(v.GetString("registry-schema")))
	}
	if name == "" {
		return nil
	}
	ns, err := tenant.NewNamespace(name)
	if err != nil {
		return err
	}
	ddl, err := postgres.TenantSchemaDDL(ns)
	if err != nil {
		return err
	}
	fmt.Println(ddl)
	return nil
}
