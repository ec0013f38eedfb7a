package main

import (
	"net/http"

	"github.com/nexfibra/api-propostas/internal/auth"
	"github.com/nexfibra/api-propostas/internal/calculos"
	"github.com/nexfibra/api-propostas/internal/config"
	"github.com/nexfibra/api-propostas/internal/configuracao"
	"github.com/nexfibra/api-propostas/internal/logger"
	"github.com/nexfibra/api-propostas/internal/proposta"
	"github.com/nexfibra/api-propostas/internal/usuario"
	"github.com/nexfibra/api-propostas/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Erro na configuração", zap.Error(err))
	}

	auth.ConfigurarSegredo(cfg.JWTSecret)

	database, err := db.Conectar(db.Config{
		Host:           cfg.DBHost,
		Port:           cfg.DBPort,
		User:           cfg.DBUser,
		Password:       cfg.DBPassword,
		Name:           cfg.DBName,
		SSLModeDisable: cfg.DBSSLModeDisable,
	})
	if err != nil {
		log.Fatal("Erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	if err := usuario.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate de usuários", zap.Error(err))
	}
	if err := configuracao.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate de configurações", zap.Error(err))
	}
	if err := proposta.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate de propostas", zap.Error(err))
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	propostaHandler := proposta.NewHandler(database)
	configuracaoHandler := configuracao.NewHandler(database)
	calculosHandler := calculos.NewHandler(database)

	// Router
	r := mux.NewRouter()
	r.Use(logger.Middleware(log))

	// Rotas abertas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/usuarios", usuarioHandler.ListarUsuarios).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.AtualizarUsuario).Methods("PUT")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.DeletarUsuario).Methods("DELETE")

	api.HandleFunc("/propostas", propostaHandler.Criar).Methods("POST")
	api.HandleFunc("/propostas", propostaHandler.Listar).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/propostas/{id}", propostaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/propostas/{id}/versoes", propostaHandler.ListarVersoes).Methods("GET")

	api.HandleFunc("/calculos/radio", calculosHandler.CalcularRadio).Methods("POST")
	api.HandleFunc("/calculos/vm", calculosHandler.CalcularVM).Methods("POST")

	api.HandleFunc("/configuracoes", configuracaoHandler.Obter).Methods("GET")
	// Somente administradores alteram tabelas de preço e alíquotas
	api.Handle("/configuracoes", auth.RequireAdmin(http.HandlerFunc(configuracaoHandler.Atualizar))).Methods("PUT")

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	log.Info("Servidor rodando", zap.String("porta", cfg.HTTPPort))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler); err != nil {
		log.Fatal("Servidor encerrado com erro", zap.Error(err))
	}
}
