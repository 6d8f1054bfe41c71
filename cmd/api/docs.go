package main

// @title           ERP Armazém API
// @version         1.0
// @description     API para gestão de armazém: produtos, estoque, pedidos, compras, documentos e faturas

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
