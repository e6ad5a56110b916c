package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Landing page
	message.SetString(lang, "title.landing", "%s | Compartilhe o que você cozinha")
	message.SetString(lang, "landing.tagline", "Um livro de receitas comunitário onde qualquer pessoa pode compartilhar receitas e guardar suas favoritas.")
	message.SetString(lang, "landing.browse", "Ver receitas")
	message.SetString(lang, "landing.sign_in", "Entrar")
	message.SetString(lang, "meta.description", "Um livro de receitas comunitário onde qualquer pessoa pode compartilhar receitas e guardar suas favoritas.")

	// Navigation
	message.SetString(lang, "nav.share_recipe", "Compartilhar Receita")
	message.SetString(lang, "nav.sign_out", "Sair")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Recipes page
	message.SetString(lang, "title.recipes", "%s | Receitas da Comunidade")
	message.SetString(lang, "recipes.heading", "Receitas da Comunidade")
	message.SetString(lang, "recipes.subtitle", "Descubra e salve receitas deliciosas da nossa comunidade")
	message.SetString(lang, "recipes.loading", "Carregando receitas…")
	message.SetString(lang, "recipes.empty.title", "Nenhuma receita ainda")
	message.SetString(lang, "recipes.empty.message", "Seja a primeira pessoa a compartilhar uma receita com a comunidade!")
	message.SetString(lang, "recipes.empty.cta", "Compartilhar a primeira receita")
	message.SetString(lang, "recipes.grid.retry", "Tentar novamente")

	// Recipe cards
	message.SetString(lang, "recipes.card.by", "por %s")
	message.SetString(lang, "recipes.card.anonymous_chef", "Chef Anônimo")
	message.SetString(lang, "recipes.card.more_ingredients", "+%d mais")
	message.SetString(lang, "recipes.card.view", "Ver Receita")
	message.SetString(lang, "recipes.card.save", "Salvar")
	message.SetString(lang, "recipes.card.saved", "Salva")

	// Recipe dialog
	message.SetString(lang, "recipes.dialog.ingredients", "Ingredientes")
	message.SetString(lang, "recipes.dialog.instructions", "Modo de preparo")
	message.SetString(lang, "recipes.dialog.cook_time", "Tempo de preparo")
	message.SetString(lang, "recipes.dialog.servings", "Porções")
	message.SetString(lang, "recipes.dialog.difficulty", "Dificuldade")
	message.SetString(lang, "recipes.dialog.cuisine", "Cozinha")
	message.SetString(lang, "recipes.dialog.close", "Fechar")

	// Notices
	message.SetString(lang, "web.recipes.notice_saved", "Receita salva!")
	message.SetString(lang, "web.recipes.notice_already_saved", "Já estava salva")
	message.SetString(lang, "web.recipes.notice_save_failed", "Não foi possível salvar a receita")
	message.SetString(lang, "web.recipes.notice_removed", "Receita removida")
	message.SetString(lang, "web.recipes.notice_remove_failed", "Não foi possível remover a receita")
	message.SetString(lang, "web.recipes.notice_load_failed", "Não foi possível carregar as receitas")
	message.SetString(lang, "web.auth.notice_signed_in", "Bem-vindo de volta!")
	message.SetString(lang, "web.auth.notice_signed_out", "Sessão encerrada")
	message.SetString(lang, "web.auth.notice_invalid_token", "Link de acesso inválido ou expirado")

	// Error page
	message.SetString(lang, "error.title", "Algo deu errado")
	message.SetString(lang, "error.message", "Não foi possível completar sua solicitação. Tente novamente em instantes.")
	message.SetString(lang, "error.back", "Voltar para as receitas")
}
