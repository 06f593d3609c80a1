package catalog

// Option é uma das quatro alternativas graduadas de maturidade.
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

// Options lista as alternativas na ordem de maturidade crescente.
var Options = []Option{OptionA, OptionB, OptionC, OptionD}

// scoreMap converte a alternativa escolhida em nota de maturidade.
// Os valores são discretos e nunca interpolados.
var scoreMap = map[Option]int{
	OptionA: 0,
	OptionB: 33,
	OptionC: 66,
	OptionD: 100,
}

// ScoreFor retorna a nota da alternativa e false para alternativas inválidas.
func ScoreFor(opt Option) (int, bool) {
	score, ok := scoreMap[opt]
	return score, ok
}

// GapThreshold é a nota abaixo da qual a questão vira um ponto de atenção.
const GapThreshold = 60

// RiskThreshold é a média de área abaixo da qual uma área crítica dispara RISCO.
const RiskThreshold = 40

// Question é um item de avaliação dentro de uma área, com quatro alternativas
// graduadas e uma sugestão padrão de melhoria usada como plano de ação default.
type Question struct {
	ID             string            `json:"id"`
	AreaID         string            `json:"area_id"`
	Enunciado      string            `json:"enunciado"`
	Label          string            `json:"label"`
	Opcoes         map[Option]string `json:"opcoes"`
	SugestaoPadrao string            `json:"sugestao_padrao"`
}

// QuestionByID retorna a questão do catálogo ou false se o id não existir.
func QuestionByID(id string) (Question, bool) {
	q, ok := questionIndex[id]
	return q, ok
}

// QuestionsByArea retorna as questões de uma área na ordem do catálogo.
func QuestionsByArea(areaID string) []Question {
	var out []Question
	for _, q := range Questions {
		if q.AreaID == areaID {
			out = append(out, q)
		}
	}
	return out
}

var questionIndex = func() map[string]Question {
	idx := make(map[string]Question, len(Questions))
	for _, q := range Questions {
		idx[q.ID] = q
	}
	return idx
}()

// Questions é o catálogo fechado do diagnóstico: cinco questões por área,
// na ordem das áreas. IDs seguem o padrão "<área>.<posição>".
var Questions = []Question{
	// 1. Societário & Governança
	{
		ID: "1.1", AreaID: "societario", Label: "Contrato",
		Enunciado: "O Contrato Social reflete a realidade atual (sócios, capital, endereço) e protege a operação?",
		Opcoes: map[Option]string{
			OptionA: "Contrato padrão, desatualizado ou informal.",
			OptionB: "Contrato existe mas tem divergências leves com a realidade.",
			OptionC: "Contrato atualizado, mas sem cláusulas profundas de proteção.",
			OptionD: "Contrato atualizado com cláusulas específicas de proteção e valuation.",
		},
		SugestaoPadrao: "Revisar e atualizar o Contrato Social com assessoria jurídica especializada.",
	},
	{
		ID: "1.2", AreaID: "societario", Label: "Acordo",
		Enunciado: "Existem regras assinadas para entrada/saída de sócios, valuation e herança?",
		Opcoes: map[Option]string{
			OptionA: "Não existe. Se um sócio sair, vira briga.",
			OptionB: "Regras verbais (\"de boca\"), sem documento assinado.",
			OptionC: "Existe um esboço ou minuta não registrada.",
			OptionD: "Acordo de Acionistas/Quotistas assinado e registrado juridicamente.",
		},
		SugestaoPadrao: "Elaborar e registrar um Acordo de Quotistas para definir regras de sucessão e saída.",
	},
	{
		ID: "1.3", AreaID: "societario", Label: "Conselho",
		Enunciado: "Existe uma rotina mensal formal de prestação de contas entre os sócios?",
		Opcoes: map[Option]string{
			OptionA: "Conversas de corredor ou apenas quando surge problema.",
			OptionB: "Reuniões esporádicas sem ata ou pauta definida.",
			OptionC: "Reunião mensal existe, mas sem análise profunda de números.",
			OptionD: "Reunião mensal agendada, com Ata, Pauta e DRE apresentado.",
		},
		SugestaoPadrao: "Instituir reuniões mensais de conselho com pauta fixa e análise de indicadores financeiros.",
	},
	{
		ID: "1.4", AreaID: "societario", Label: "Holding",
		Enunciado: "Existe estrutura de proteção patrimonial (Holding) ou separação de riscos?",
		Opcoes: map[Option]string{
			OptionA: "Bens dos sócios estão expostos no nome da Pessoa Física.",
			OptionB: "Alguns bens separados, mas com mistura patrimonial.",
			OptionC: "Estrutura em andamento / Planejamento Sucessório iniciado.",
			OptionD: "Estrutura de Holding ou blindagem jurídica constituída e ativa.",
		},
		SugestaoPadrao: "Avaliar a viabilidade de uma Holding Patrimonial para proteção e planejamento sucessório.",
	},
	{
		ID: "1.5", AreaID: "societario", Label: "Papéis",
		Enunciado: "As funções de cada sócio na operação estão claras e não se sobrepõem?",
		Opcoes: map[Option]string{
			OptionA: "Sócios \"batem cabeça\", todos mandam em tudo.",
			OptionB: "Divisão informal, mas as vezes um invade a área do outro.",
			OptionC: "Divisão clara no papel, mas na prática há interferências.",
			OptionD: "Organograma respeitado: cada sócio tem sua diretoria e autonomia.",
		},
		SugestaoPadrao: "Definir organograma diretivo e matriz de responsabilidades (RACI) entre os sócios.",
	},

	// 2. Tecnologia & Inovação
	{
		ID: "2.1", AreaID: "tecnologia", Label: "ERP",
		Enunciado: "O sistema de gestão (ERP) centraliza a operação ou há dependência de planilhas?",
		Opcoes: map[Option]string{
			OptionA: "Vários controles paralelos, papel e redigitação manual.",
			OptionB: "Sistema existe mas é subutilizado (usa-se muito Excel fora).",
			OptionC: "Sistema centraliza 80% da operação.",
			OptionD: "ERP integrado (Vendas, Estoque, Financeiro) em tempo real (100%).",
		},
		SugestaoPadrao: "Migrar controles paralelos para o ERP e treinar a equipe para uso integral das funcionalidades.",
	},
	{
		ID: "2.2", AreaID: "tecnologia", Label: "Backup",
		Enunciado: "Como é realizado o backup dos dados e a proteção contra ataques?",
		Opcoes: map[Option]string{
			OptionA: "Backup manual em HD externo/Pen drive ou não existe.",
			OptionB: "Backup em nuvem esporádico (ex: Google Drive pessoal).",
			OptionC: "Backup automático, mas sem teste de restauração.",
			OptionD: "Backup em nuvem automatizado, criptografado e testado regularmente.",
		},
		SugestaoPadrao: "Implementar solução de backup em nuvem profissional com redundância e testes de restore.",
	},
	{
		ID: "2.3", AreaID: "tecnologia", Label: "Automação",
		Enunciado: "Tarefas repetitivas (boletos, notas, e-mails) são feitas por robôs/sistemas?",
		Opcoes: map[Option]string{
			OptionA: "Processos manuais, lentos e sujeitos a erro humano.",
			OptionB: "Algumas automações isoladas, mas muita intervenção manual.",
			OptionC: "Maioria automatizada, mas requer supervisão constante.",
			OptionD: "Automação de fluxo de trabalho (Workflow) implementada ponta a ponta.",
		},
		SugestaoPadrao: "Identificar gargalos manuais e implementar ferramentas de automação (RPA/n8n/Make).",
	},
	{
		ID: "2.4", AreaID: "tecnologia", Label: "Inovação",
		Enunciado: "A empresa utiliza novas tecnologias (IA, Dashboards) para ganhar competitividade?",
		Opcoes: map[Option]string{
			OptionA: "Ignora tecnologia, opera processos como há 10 anos.",
			OptionB: "Usa ferramentas básicas, mas sem integração inteligente.",
			OptionC: "Começando a usar Dashboards para visualização de dados.",
			OptionD: "Usa ferramentas de ponta e IA para análise preditiva e produtividade.",
		},
		SugestaoPadrao: "Capacitar a equipe no uso de IA generativa e BI para suporte à tomada de decisão.",
	},
	{
		ID: "2.5", AreaID: "tecnologia", Label: "LGPD",
		Enunciado: "Os dados de clientes e funcionários estão tratados conforme a LGPD?",
		Opcoes: map[Option]string{
			OptionA: "Nenhum controle de acesso, dados sensíveis expostos.",
			OptionB: "Controle básico de senhas, mas sem política definida.",
			OptionC: "Processos mapeados, mas adequação parcial.",
			OptionD: "Processos 100% adequados à LGPD com controle de acesso rigoroso.",
		},
		SugestaoPadrao: "Realizar diagnóstico de conformidade LGPD e implementar políticas de privacidade.",
	},

	// 3. Comercial
	{
		ID: "3.1", AreaID: "comercial", Label: "Preço",
		Enunciado: "O preço de venda cobre custos e garante margem real de lucro?",
		Opcoes: map[Option]string{
			OptionA: "Preço baseado no \"chute\" ou apenas copiando o concorrente.",
			OptionB: "Cálculo simples (Custo x 2), sem análise de margem de contribuição.",
			OptionC: "Precificação técnica, mas desatualizada.",
			OptionD: "Precificação técnica com markup revisado e margem de contribuição clara.",
		},
		SugestaoPadrao: "Revisar a planilha de precificação considerando impostos, custos fixos e margem desejada.",
	},
	{
		ID: "3.2", AreaID: "comercial", Label: "Metas",
		Enunciado: "As metas são desdobradas (diárias/semanais) e visíveis para o time?",
		Opcoes: map[Option]string{
			OptionA: "Meta existe apenas na cabeça do dono ou mensal global.",
			OptionB: "Meta definida verbalmente, sem acompanhamento visual.",
			OptionC: "Metas individuais definidas em planilha, cobradas semanalmente.",
			OptionD: "Metas desdobradas acompanhadas em tempo real (Gestão à Vista).",
		},
		SugestaoPadrao: "Implementar dashboard de gestão à vista com indicadores de performance (KPIs) diários.",
	},
	{
		ID: "3.3", AreaID: "comercial", Label: "CRM",
		Enunciado: "Existe gestão do funil de vendas e taxa de conversão (CRM)?",
		Opcoes: map[Option]string{
			OptionA: "Venda anotada em caderno/agenda. Sem histórico.",
			OptionB: "Planilha de controle de clientes (Excel).",
			OptionC: "CRM implantado mas subutilizado (apenas cadastro).",
			OptionD: "CRM ativo com funil, motivos de perda e histórico de interações.",
		},
		SugestaoPadrao: "Treinar o time comercial no uso do CRM e monitorar as taxas de conversão de cada etapa.",
	},
	{
		ID: "3.4", AreaID: "comercial", Label: "Playbook",
		Enunciado: "Existe um roteiro de vendas (Script, Objeções) padronizado?",
		Opcoes: map[Option]string{
			OptionA: "Cada vendedor vende do seu jeito (Depende de talento individual).",
			OptionB: "Existe um script verbal combinado, mas não documentado.",
			OptionC: "Playbook escrito, mas a equipe não segue à risca.",
			OptionD: "Playbook de Vendas treinado, auditado e executado por todos.",
		},
		SugestaoPadrao: "Criar um Playbook de Vendas com scripts de abordagem e técnicas de contorno de objeções.",
	},
	{
		ID: "3.5", AreaID: "comercial", Label: "Canais",
		Enunciado: "Como os clientes chegam na empresa (Canais de Aquisição)?",
		Opcoes: map[Option]string{
			OptionA: "100% Indicação / Boca a boca (Dependência total da rede atual).",
			OptionB: "Indicação + Prospecção ativa eventual sem processo.",
			OptionC: "Processo híbrido (Marketing Digital + Indicação) constante.",
			OptionD: "Máquina de vendas previsível com múltiplos canais tracionando.",
		},
		SugestaoPadrao: "Diversificar canais de aquisição para reduzir a dependência exclusiva de indicações.",
	},

	// 4. Marketing
	{
		ID: "4.1", AreaID: "marketing", Label: "Vitrine",
		Enunciado: "A vitrine digital (Site, Redes, Google) transmite autoridade?",
		Opcoes: map[Option]string{
			OptionA: "Não tem site ou redes sociais estão abandonadas/amadoras.",
			OptionB: "Redes sociais ativas, mas sem estratégia visual definida.",
			OptionC: "Presença digital bonita, mas converte pouco.",
			OptionD: "Presença digital profissional, autoridade clara e focada em conversão.",
		},
		SugestaoPadrao: "Revitalizar a identidade visual e otimizar o site para conversão de leads.",
	},
	{
		ID: "4.2", AreaID: "marketing", Label: "MQL",
		Enunciado: "O marketing entrega oportunidades reais (MQL) para o comercial?",
		Opcoes: map[Option]string{
			OptionA: "Só entrega \"curiosos\" ou métricas de vaidade (likes/seguidores).",
			OptionB: "Leads chegam, mas muito frios ou desqualificados.",
			OptionC: "Volume bom de leads, qualidade mediana.",
			OptionD: "Entrega leads qualificados (MQL) prontos para abordagem comercial.",
		},
		SugestaoPadrao: "Definir critérios de qualificação de leads (SLA) entre marketing e vendas.",
	},
	{
		ID: "4.3", AreaID: "marketing", Label: "CAC",
		Enunciado: "A empresa sabe o Custo de Aquisição de Cliente (CAC)?",
		Opcoes: map[Option]string{
			OptionA: "Não sabe quanto gasta para trazer um cliente novo.",
			OptionB: "Sabe apenas o valor total investido em anúncios.",
			OptionC: "Monitora o custo por lead (CPL), mas não o CAC final.",
			OptionD: "Monitora CAC, ROI e LTV (Valor do tempo de vida) mensalmente.",
		},
		SugestaoPadrao: "Implementar planilha de métricas para monitorar CAC e ROI por canal de aquisição.",
	},
	{
		ID: "4.4", AreaID: "marketing", Label: "Base",
		Enunciado: "Existem campanhas ativas para revender para a base atual (Farm)?",
		Opcoes: map[Option]string{
			OptionA: "Foco 100% em cliente novo. Base antiga é esquecida.",
			OptionB: "Ações pontuais (ex: Black Friday), sem recorrência.",
			OptionC: "Campanhas estruturadas, mas manuais.",
			OptionD: "Campanhas recorrentes e automatizadas de Cross-sell e Up-sell.",
		},
		SugestaoPadrao: "Implementar régua de relacionamento pós-venda para aumentar o LTV da base atual.",
	},
	{
		ID: "4.5", AreaID: "marketing", Label: "Reputação",
		Enunciado: "A empresa utiliza Google Meu Negócio e avaliações a seu favor?",
		Opcoes: map[Option]string{
			OptionA: "Perfil inexistente ou desatualizado.",
			OptionB: "Perfil existe, mas poucas avaliações ou sem resposta.",
			OptionC: "Perfil ativo, responde avaliações esporadicamente.",
			OptionD: "Gestão ativa de reputação, incentivando avaliações 5 estrelas.",
		},
		SugestaoPadrao: "Atualizar o Google Meu Negócio e criar campanha de incentivo a depoimentos de clientes.",
	},

	// 5. Financeiro
	{
		ID: "5.1", AreaID: "financeiro", Label: "Contas",
		Enunciado: "Existe mistura de contas pessoais dos sócios com as da empresa?",
		Opcoes: map[Option]string{
			OptionA: "Caixa único. Empresa paga contas da casa do dono (Escola, Mercado).",
			OptionB: "Contas separadas, mas transferências frequentes sem registro.",
			OptionC: "Separação existe, mas ocorrem exceções eventuais.",
			OptionD: "Separação total e auditada (Princípio da Entidade respeitado).",
		},
		SugestaoPadrao: "Eliminar pagamentos pessoais pela conta da empresa e instituir pro-labore fixo.",
	},
	{
		ID: "5.2", AreaID: "financeiro", Label: "Pró-Labore",
		Enunciado: "O salário dos sócios (Pró-Labore) é fixo e definido?",
		Opcoes: map[Option]string{
			OptionA: "Retiradas aleatórias conforme \"sobra\" dinheiro no dia.",
			OptionB: "Valor definido \"de boca\", mas varia conforme a necessidade.",
			OptionC: "Pró-labore definido, mas as vezes atrasa ou adianta.",
			OptionD: "Pró-labore fixo de mercado pago na data correta + Lucros apurados.",
		},
		SugestaoPadrao: "Formalizar o pró-labore dos sócios e agendar retiradas mensais fixas.",
	},
	{
		ID: "5.3", AreaID: "financeiro", Label: "Conciliação",
		Enunciado: "O Contas a Pagar/Receber é conciliado diariamente?",
		Opcoes: map[Option]string{
			OptionA: "Controle frouxo, perde-se prazos ou esquece de cobrar.",
			OptionB: "Conciliação feita semanalmente ou quando dá tempo.",
			OptionC: "Conciliação diária, mas com pequenos furos de centavos.",
			OptionD: "Conciliação bancária diária, rigorosa e sem erros.",
		},
		SugestaoPadrao: "Implementar processo rigoroso de conciliação bancária diária no ERP.",
	},
	{
		ID: "5.4", AreaID: "financeiro", Label: "Fluxo",
		Enunciado: "Existe previsibilidade de caixa para 30/60/90 dias?",
		Opcoes: map[Option]string{
			OptionA: "Vive o dia de hoje (\"Vendendo almoço p/ pagar janta\").",
			OptionB: "Olha apenas as contas da semana seguinte.",
			OptionC: "Fluxo de caixa projetado para o mês corrente.",
			OptionD: "Fluxo de caixa projetado para 3 meses à frente com cenários.",
		},
		SugestaoPadrao: "Projetar o fluxo de caixa para 90 dias com análise de cenários otimista e pessimista.",
	},
	{
		ID: "5.5", AreaID: "financeiro", Label: "Cobrança",
		Enunciado: "Existe processo estruturado de cobrança e inadimplência?",
		Opcoes: map[Option]string{
			OptionA: "Cobra apenas quando lembra ou tem medo de cobrar o cliente.",
			OptionB: "Cobra via WhatsApp informalmente, sem padrão.",
			OptionC: "Régua de cobrança manual (e-mail/ligação).",
			OptionD: "Régua de cobrança automatizada, preventiva e ativa.",
		},
		SugestaoPadrao: "Automatizar a régua de cobrança e definir políticas claras de juros e multas.",
	},

	// 6. Controladoria
	{
		ID: "6.1", AreaID: "controladoria", Label: "DRE",
		Enunciado: "Analisa-se o lucro real (Competência) mensalmente?",
		Opcoes: map[Option]string{
			OptionA: "Olha apenas saldo bancário (Caixa). Não sabe se teve lucro econômico.",
			OptionB: "DRE existe mas é confuso ou incompleto.",
			OptionC: "DRE analisado esporadicamente ou com atraso.",
			OptionD: "DRE analisado mensalmente com margens detalhadas (EBITDA).",
		},
		SugestaoPadrao: "Implantar DRE gerencial por competência para análise real da lucratividade do negócio.",
	},
	{
		ID: "6.2", AreaID: "controladoria", Label: "Margem",
		Enunciado: "Conhece-se a margem de contribuição real de cada produto/serviço?",
		Opcoes: map[Option]string{
			OptionA: "Não sabe qual produto dá prejuízo. Vende no volume.",
			OptionB: "Sabe a margem média geral, mas não por produto.",
			OptionC: "Margem calculada para os principais produtos apenas.",
			OptionD: "Margem calculada por SKU/Serviço. Mix otimizado pelo lucro.",
		},
		SugestaoPadrao: "Calcular a margem de contribuição individual por produto e serviço.",
	},
	{
		ID: "6.3", AreaID: "controladoria", Label: "Orçamento",
		Enunciado: "Existe teto de gastos definido por departamento (Orçamento)?",
		Opcoes: map[Option]string{
			OptionA: "Gasta-se conforme a necessidade aparece (Sem teto).",
			OptionB: "Existe uma ideia de limite, mas ninguém controla.",
			OptionC: "Orçamento definido, mas não há travamento de gastos.",
			OptionD: "Orçamento anual definido e acompanhado (Previsto x Realizado).",
		},
		SugestaoPadrao: "Elaborar orçamento anual (Budget) e monitorar variações mensais.",
	},
	{
		ID: "6.4", AreaID: "controladoria", Label: "Estoque",
		Enunciado: "Existe inventário rotativo para evitar furos de estoque e roubos?",
		Opcoes: map[Option]string{
			OptionA: "Estoque nunca bate, não é contado ou é bagunçado.",
			OptionB: "Contagem apenas anual (Balanço), com muitas divergências.",
			OptionC: "Contagens mensais, mas ainda sobram ajustes.",
			OptionD: "Inventários cíclicos (rotativos) e auditoria de processos constantes.",
		},
		SugestaoPadrao: "Implementar inventários rotativos semanais e auditar as baixas de estoque.",
	},
	{
		ID: "6.5", AreaID: "controladoria", Label: "Custos",
		Enunciado: "Os custos fixos são revisados periodicamente?",
		Opcoes: map[Option]string{
			OptionA: "Custos fixos só aumentam, nunca são questionados.",
			OptionB: "Revisão apenas em momentos de crise aguda.",
			OptionC: "Revisão anual básica de contratos.",
			OptionD: "Gestão Matricial de Despesas (GMD) ativa para redução contínua.",
		},
		SugestaoPadrao: "Revisar todos os contratos de custos fixos em busca de eficiência e renegociação.",
	},

	// 7. Fiscal
	{
		ID: "7.1", AreaID: "fiscal", Label: "Regime",
		Enunciado: "Qual o regime tributário atual da empresa?",
		Opcoes: map[Option]string{
			OptionA: "Informal / Não sabe informar (Risco alto).",
			OptionB: "Simples Nacional (Evolução natural sem revisão).",
			OptionC: "Lucro Presumido (Média complexidade).",
			OptionD: "Lucro Real (Alta complexidade e controle rigoroso).",
		},
		SugestaoPadrao: "Realizar planejamento tributário para validar se o regime atual é o mais eficiente.",
	},
	{
		ID: "7.2", AreaID: "fiscal", Label: "NCM",
		Enunciado: "A classificação fiscal (NCM) está auditada?",
		Opcoes: map[Option]string{
			OptionA: "Cadastro de produtos nunca revisado.",
			OptionB: "Revisão feita apenas na implantação do sistema.",
			OptionC: "Revisão esporádica por amostragem.",
			OptionD: "Auditoria de cadastro completa e monitoramento constante.",
		},
		SugestaoPadrao: "Contratar auditoria de cadastro fiscal para evitar multas.",
	},
	{
		ID: "7.3", AreaID: "fiscal", Label: "CNDs",
		Enunciado: "A regularidade fiscal (CNDs) é monitorada mensalmente?",
		Opcoes: map[Option]string{
			OptionA: "Descobre dívida só quando bloqueia a conta.",
			OptionB: "Pede CND apenas quando precisa de empréstimo.",
			OptionC: "Monitoramento trimestral pelo contador.",
			OptionD: "Monitoramento preventivo mensal de todas as certidões.",
		},
		SugestaoPadrao: "Implementar check-up fiscal mensal.",
	},
	{
		ID: "7.4", AreaID: "fiscal", Label: "Créditos",
		Enunciado: "A empresa aproveita créditos tributários e benefícios fiscais disponíveis?",
		Opcoes: map[Option]string{
			OptionA: "Nunca levantou créditos. Paga tudo \"no cheio\".",
			OptionB: "Já ouviu falar, mas nunca fez o levantamento.",
			OptionC: "Recuperação pontual feita no passado, sem rotina.",
			OptionD: "Revisão periódica de créditos com recuperação ativa e documentada.",
		},
		SugestaoPadrao: "Realizar levantamento de créditos tributários dos últimos 5 anos com especialista.",
	},
	{
		ID: "7.5", AreaID: "fiscal", Label: "Obrigações",
		Enunciado: "As obrigações acessórias (SPED, DCTF, EFD) são entregues sem retrabalho?",
		Opcoes: map[Option]string{
			OptionA: "Entregas atrasam ou geram multas recorrentes.",
			OptionB: "Entregas em dia, mas com retificações frequentes.",
			OptionC: "Entregas em dia, retificações apenas eventuais.",
			OptionD: "Calendário fiscal monitorado, entregas validadas antes do envio.",
		},
		SugestaoPadrao: "Implantar calendário de obrigações acessórias com validação prévia dos arquivos.",
	},

	// 8. Contábil
	{
		ID: "8.1", AreaID: "contabil", Label: "Balancete",
		Enunciado: "O balancete mensal chega em tempo hábil para a tomada de decisão?",
		Opcoes: map[Option]string{
			OptionA: "Contabilidade só fecha no ano seguinte (uso apenas fiscal).",
			OptionB: "Balancete chega com 2-3 meses de atraso.",
			OptionC: "Balancete mensal chega, mas ninguém analisa.",
			OptionD: "Fechamento contábil até o dia 10 com reunião de análise.",
		},
		SugestaoPadrao: "Negociar com a contabilidade o fechamento mensal até o dia 10 com análise conjunta.",
	},
	{
		ID: "8.2", AreaID: "contabil", Label: "Conciliação",
		Enunciado: "As contas contábeis (bancos, estoque, imobilizado) estão conciliadas?",
		Opcoes: map[Option]string{
			OptionA: "Saldos contábeis não batem com a realidade.",
			OptionB: "Apenas bancos conciliados, resto \"no escuro\".",
			OptionC: "Conciliação das contas principais, pendências antigas acumuladas.",
			OptionD: "Todas as contas conciliadas mensalmente sem pendências.",
		},
		SugestaoPadrao: "Realizar mutirão de conciliação contábil e instituir rotina mensal de validação de saldos.",
	},
	{
		ID: "8.3", AreaID: "contabil", Label: "Gerencial",
		Enunciado: "A contabilidade é usada como ferramenta gerencial ou só para pagar imposto?",
		Opcoes: map[Option]string{
			OptionA: "Contador só emite guias. Nenhuma análise é feita.",
			OptionB: "Relatórios existem, mas ninguém entende os números.",
			OptionC: "Análises pontuais quando o dono pede.",
			OptionD: "Contabilidade consultiva com indicadores e comparativos mensais.",
		},
		SugestaoPadrao: "Migrar para contabilidade consultiva com entrega mensal de indicadores gerenciais.",
	},
	{
		ID: "8.4", AreaID: "contabil", Label: "Patrimônio",
		Enunciado: "O controle patrimonial (imobilizado e depreciação) está atualizado?",
		Opcoes: map[Option]string{
			OptionA: "Não existe inventário de bens da empresa.",
			OptionB: "Lista de bens antiga, sem baixas registradas.",
			OptionC: "Controle existe, depreciação calculada apenas fiscalmente.",
			OptionD: "Inventário físico anual com controle de depreciação gerencial.",
		},
		SugestaoPadrao: "Realizar inventário físico do imobilizado e atualizar o controle patrimonial.",
	},
	{
		ID: "8.5", AreaID: "contabil", Label: "Distribuição",
		Enunciado: "A distribuição de lucros é formalizada e baseada em resultado apurado?",
		Opcoes: map[Option]string{
			OptionA: "Sócios retiram \"o que dá\" sem apuração de lucro.",
			OptionB: "Distribuição informal baseada no caixa disponível.",
			OptionC: "Distribuição baseada em resultado, mas sem formalização.",
			OptionD: "Distribuição formalizada em ata, baseada no lucro contábil apurado.",
		},
		SugestaoPadrao: "Formalizar a política de distribuição de lucros com base no resultado contábil apurado.",
	},

	// 9. Cultura & Clima
	{
		ID: "9.1", AreaID: "cultura", Label: "Valores",
		Enunciado: "Missão, visão e valores existem e são praticados no dia a dia?",
		Opcoes: map[Option]string{
			OptionA: "Não existem ou estão só no quadro da parede.",
			OptionB: "Existem no papel, mas a equipe não conhece.",
			OptionC: "Equipe conhece, mas as decisões nem sempre refletem.",
			OptionD: "Valores vivos: usados em contratação, avaliação e decisões.",
		},
		SugestaoPadrao: "Revisitar missão, visão e valores com a liderança e conectá-los aos rituais da empresa.",
	},
	{
		ID: "9.2", AreaID: "cultura", Label: "Clima",
		Enunciado: "O clima organizacional é medido e tratado com regularidade?",
		Opcoes: map[Option]string{
			OptionA: "Nunca foi medido. Só percebe quando alguém pede demissão.",
			OptionB: "Conversas informais, sem registro ou plano de ação.",
			OptionC: "Pesquisa anual aplicada, mas sem devolutiva à equipe.",
			OptionD: "Pesquisa periódica com plano de ação acompanhado e comunicado.",
		},
		SugestaoPadrao: "Implantar pesquisa de clima periódica com devolutiva e plano de ação visível.",
	},
	{
		ID: "9.3", AreaID: "cultura", Label: "Comunicação",
		Enunciado: "A comunicação interna é estruturada (rituais, reuniões, canais)?",
		Opcoes: map[Option]string{
			OptionA: "Rádio corredor. Informação chega distorcida ou não chega.",
			OptionB: "Grupos de WhatsApp sem padrão ou responsável.",
			OptionC: "Reuniões periódicas existem, mas sem pauta ou registro.",
			OptionD: "Rituais de comunicação definidos (daily/semanal/mensal) com registro.",
		},
		SugestaoPadrao: "Estruturar rituais de comunicação com frequência, pauta e responsáveis definidos.",
	},
	{
		ID: "9.4", AreaID: "cultura", Label: "Liderança",
		Enunciado: "As lideranças são preparadas para gerir pessoas (e não só tarefas)?",
		Opcoes: map[Option]string{
			OptionA: "Líderes promovidos por tempo de casa, sem preparo.",
			OptionB: "Líderes aprendem \"na pancada\", sem suporte.",
			OptionC: "Treinamentos pontuais de liderança já realizados.",
			OptionD: "Programa contínuo de desenvolvimento de líderes com feedback.",
		},
		SugestaoPadrao: "Criar programa de desenvolvimento de lideranças com mentoria e feedbacks estruturados.",
	},
	{
		ID: "9.5", AreaID: "cultura", Label: "Retenção",
		Enunciado: "A empresa retém seus talentos ou vive apagando incêndio de turnover?",
		Opcoes: map[Option]string{
			OptionA: "Turnover alto, recontrata o mesmo cargo várias vezes ao ano.",
			OptionB: "Perde bons profissionais para concorrentes com frequência.",
			OptionC: "Retenção razoável, mas sem estratégia ativa.",
			OptionD: "Baixo turnover com plano de carreira e reconhecimento ativos.",
		},
		SugestaoPadrao: "Mapear causas de turnover e estruturar plano de retenção para posições-chave.",
	},

	// 10. Pessoas (RH)
	{
		ID: "10.1", AreaID: "pessoas", Label: "Estrutura",
		Enunciado: "Qual a estrutura atual do departamento de pessoas?",
		Opcoes: map[Option]string{
			OptionA: "Não tem (Dono faz tudo ou é delegado sem processo).",
			OptionB: "Apenas DP (Focado em burocracia/folha).",
			OptionC: "RH Generalista (Recrutamento + DP).",
			OptionD: "RH Estratégico (DHO, Clima, Treinamento e Cultura).",
		},
		SugestaoPadrao: "Estruturar processos básicos de RH para suporte ao crescimento.",
	},
	{
		ID: "10.2", AreaID: "pessoas", Label: "Treinamento",
		Enunciado: "Existe um calendário de treinamentos técnicos e comportamentais?",
		Opcoes: map[Option]string{
			OptionA: "Nenhum treinamento realizado.",
			OptionB: "Treinamentos esporádicos quando surge erro grave.",
			OptionC: "Calendário técnico existe, mas sem foco comportamental.",
			OptionD: "Calendário anual de treinamentos (Soft e Hard Skills) executado.",
		},
		SugestaoPadrao: "Implementar matriz de treinamento baseada nos GAPs da equipe.",
	},
	{
		ID: "10.3", AreaID: "pessoas", Label: "Seleção",
		Enunciado: "O processo seletivo avalia técnica e perfil comportamental?",
		Opcoes: map[Option]string{
			OptionA: "Contrata na urgência (\"o primeiro que aceitar\").",
			OptionB: "Entrevista focada apenas na experiência técnica (CV).",
			OptionC: "Aplica-se teste técnico e entrevista com RH.",
			OptionD: "Processo com testes, análise de perfil (DISC) e validação cultural.",
		},
		SugestaoPadrao: "Utilizar ferramentas de análise comportamental (DISC).",
	},
	{
		ID: "10.4", AreaID: "pessoas", Label: "Avaliação",
		Enunciado: "Existe avaliação de desempenho com metas e feedback individual?",
		Opcoes: map[Option]string{
			OptionA: "Funcionário só descobre que vai mal quando é demitido.",
			OptionB: "Feedback informal, sem registro ou critério.",
			OptionC: "Avaliação anual existe, mas sem desdobramento em metas.",
			OptionD: "Ciclo de avaliação com metas, feedback e PDI acompanhado.",
		},
		SugestaoPadrao: "Implantar ciclo de avaliação de desempenho com metas individuais e PDI.",
	},
	{
		ID: "10.5", AreaID: "pessoas", Label: "Cargos",
		Enunciado: "Cargos, salários e trilhas de crescimento estão definidos?",
		Opcoes: map[Option]string{
			OptionA: "Salários definidos \"no olho\", gerando injustiças internas.",
			OptionB: "Tabela salarial informal, sem critérios de promoção.",
			OptionC: "Estrutura de cargos existe, mas desatualizada.",
			OptionD: "Plano de cargos e salários ativo com trilhas de crescimento claras.",
		},
		SugestaoPadrao: "Estruturar plano de cargos e salários com critérios objetivos de promoção.",
	},

	// 11. Planejamento
	{
		ID: "11.1", AreaID: "planejamento", Label: "Estratégia",
		Enunciado: "Existe planejamento estratégico formal com horizonte de 1-3 anos?",
		Opcoes: map[Option]string{
			OptionA: "Empresa opera no improviso, apagando incêndios.",
			OptionB: "Objetivos na cabeça do dono, sem documento.",
			OptionC: "Planejamento anual feito, mas abandonado na gaveta.",
			OptionD: "Planejamento estratégico vivo, revisado trimestralmente.",
		},
		SugestaoPadrao: "Conduzir ciclo de planejamento estratégico com objetivos, indicadores e revisão trimestral.",
	},
	{
		ID: "11.2", AreaID: "planejamento", Label: "Metas",
		Enunciado: "Os objetivos estratégicos são desdobrados em metas por área?",
		Opcoes: map[Option]string{
			OptionA: "Nenhuma meta formal além de \"vender mais\".",
			OptionB: "Metas globais existem, mas não chegam às áreas.",
			OptionC: "Metas por área definidas, acompanhamento irregular.",
			OptionD: "Metas desdobradas (OKRs/KPIs) com rituais de acompanhamento.",
		},
		SugestaoPadrao: "Desdobrar os objetivos estratégicos em metas por área com rituais de acompanhamento.",
	},
	{
		ID: "11.3", AreaID: "planejamento", Label: "Indicadores",
		Enunciado: "A empresa acompanha indicadores-chave em painel único?",
		Opcoes: map[Option]string{
			OptionA: "Nenhum indicador é medido com regularidade.",
			OptionB: "Alguns números soltos em planilhas de cada área.",
			OptionC: "Painel existe, mas atualizado manualmente com atraso.",
			OptionD: "Painel de indicadores atualizado e usado nas decisões semanais.",
		},
		SugestaoPadrao: "Consolidar os indicadores-chave em painel único com atualização automática.",
	},
	{
		ID: "11.4", AreaID: "planejamento", Label: "Cenários",
		Enunciado: "Decisões de investimento consideram análise de cenários e retorno?",
		Opcoes: map[Option]string{
			OptionA: "Investe por impulso ou oportunidade do momento.",
			OptionB: "Avalia apenas o desembolso inicial, sem projeção.",
			OptionC: "Faz análise simples de payback para grandes decisões.",
			OptionD: "Análise de viabilidade (TIR/VPL/cenários) para todo investimento relevante.",
		},
		SugestaoPadrao: "Instituir análise de viabilidade com cenários para decisões de investimento.",
	},
	{
		ID: "11.5", AreaID: "planejamento", Label: "Sucessão",
		Enunciado: "Existe plano de sucessão e continuidade para posições críticas?",
		Opcoes: map[Option]string{
			OptionA: "Se o dono parar, a empresa para junto.",
			OptionB: "Dependência total de 1-2 pessoas-chave sem backup.",
			OptionC: "Sucessores mapeados informalmente, sem preparo.",
			OptionD: "Plano de sucessão formal com sucessores em desenvolvimento.",
		},
		SugestaoPadrao: "Mapear posições críticas e estruturar plano de sucessão com desenvolvimento de backups.",
	},

	// 12. Processos
	{
		ID: "12.1", AreaID: "processos", Label: "Mapeamento",
		Enunciado: "Os processos-chave da operação estão mapeados e documentados?",
		Opcoes: map[Option]string{
			OptionA: "Tudo na cabeça das pessoas. Cada um faz de um jeito.",
			OptionB: "Alguns rascunhos de processo, desatualizados.",
			OptionC: "Processos principais mapeados, mas pouco consultados.",
			OptionD: "Processos mapeados, versionados e seguidos pela equipe.",
		},
		SugestaoPadrao: "Mapear e documentar os processos-chave da operação com donos definidos.",
	},
	{
		ID: "12.2", AreaID: "processos", Label: "Padrão",
		Enunciado: "Existem POPs (Procedimentos Operacionais Padrão) para as rotinas críticas?",
		Opcoes: map[Option]string{
			OptionA: "Nenhum procedimento escrito. Treinamento é \"olha e aprende\".",
			OptionB: "POPs antigos que ninguém segue.",
			OptionC: "POPs das rotinas principais, atualização irregular.",
			OptionD: "POPs completos, atualizados e usados no onboarding.",
		},
		SugestaoPadrao: "Criar POPs das rotinas críticas e vinculá-los ao treinamento de novos colaboradores.",
	},
	{
		ID: "12.3", AreaID: "processos", Label: "Gargalos",
		Enunciado: "Gargalos e retrabalhos são identificados e atacados sistematicamente?",
		Opcoes: map[Option]string{
			OptionA: "Retrabalho é rotina aceita (\"sempre foi assim\").",
			OptionB: "Problemas conhecidos, mas nunca priorizados.",
			OptionC: "Melhorias pontuais quando o problema explode.",
			OptionD: "Rotina de melhoria contínua (Kaizen) com indicadores de retrabalho.",
		},
		SugestaoPadrao: "Implantar rotina de melhoria contínua priorizando os gargalos de maior impacto.",
	},
	{
		ID: "12.4", AreaID: "processos", Label: "Qualidade",
		Enunciado: "Existe controle de qualidade com critérios objetivos de aceitação?",
		Opcoes: map[Option]string{
			OptionA: "Qualidade depende do humor de quem confere.",
			OptionB: "Conferência informal, sem critério escrito.",
			OptionC: "Checklist de qualidade existe para parte das entregas.",
			OptionD: "Controle de qualidade com critérios objetivos e registro de não conformidades.",
		},
		SugestaoPadrao: "Definir critérios objetivos de qualidade e registrar não conformidades para análise.",
	},
	{
		ID: "12.5", AreaID: "processos", Label: "Capacidade",
		Enunciado: "A empresa conhece sua capacidade produtiva e o custo por entrega?",
		Opcoes: map[Option]string{
			OptionA: "Aceita qualquer demanda sem saber se consegue entregar.",
			OptionB: "Noção empírica da capacidade, sem números.",
			OptionC: "Capacidade conhecida, custo por entrega estimado.",
			OptionD: "Capacidade e custo por entrega medidos e usados na precificação.",
		},
		SugestaoPadrao: "Medir a capacidade produtiva e o custo real por entrega para basear a precificação.",
	},
}
