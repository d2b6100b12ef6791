package menu

import "github.com/antares-engineering/antares-telegram-bot/pkg/domain"

const WelcomeText = `🌟 <b>Добро пожаловать в ANTARES ENGINEERING!</b> 🌟

Я рад приветствовать Вас в команде ведущей строительно-монтажной компании Казахстана!

Наша миссия — создавать надежные и инновационные инженерные решения, способствующие развитию инфраструктуры и технологий.`

// FallbackText is sent as plain text, without a parse mode.
const FallbackText = "Пожалуйста, используйте кнопки меню для навигации."

type Entry struct {
	Text                  string
	DisableWebPagePreview bool
}

var entries = [...]Entry{
	domain.TopicAbout: {
		Text: `🏢 <b>О компании ANTARES ENGINEERING</b>

ТОО "ANTARES ENGINEERING" - строительно-монтажная компания с более чем 10-летним опытом работы.

🔹 Профессиональная реализация крупных проектов
🔹 Внимание к деталям и индивидуальный подход
🔹 Соответствие высочайшим стандартам качества
🔹 Надежные и эффективные инженерные решения

Мы не просто строим - мы создаем будущее!`,
	},
	domain.TopicSpecialization: {
		Text: `📌 <b>Наши специализации:</b>

• Строительное проектирование и реконструкция
• Системы автоматизации и диспетчеризации
• Видеонаблюдение и аналитика
• Проектирование и сооружение сетей
• Дистрибьюция строительных материалов
• Техническая поддержка объектов связи
• Строительство телекоммуникационной инфраструктуры
• Ремонтные и монтажные работы
• Электро- и теплоэнергетическое оборудование
• Альтернативная энергетика (ВИЭ)`,
	},
	domain.TopicProjects: {
		Text: `🏗 <b>Наши проекты:</b>

• <b>SMART NATIONAL PARK BURABAY</b> - Система раннего распознавания лесных пожаров
• Система обнаружения пожаров в Алматы (Медео, Шымбулак)
• <b>ГЛПР ЕРТIС ОРМАНЫ</b> - система обнаружения (277 961 га)
• <b>BEELINE, ALTEL TELE2</b> - строительство сетей связи
• Строительство и ремонт школ и спортплощадок
• <b>КазНТУ им. Сатпаева</b> - система видеонаблюдения (254 камеры)`,
	},
	domain.TopicContact: {
		Text: `📞 <b>Контактная информация:</b>

<b>Телефоны:</b>
+7 (727) 339 30 87
+7 (747) 505 37 77
+7 (777) 777 07 44

<b>Email:</b> antares.engineering@bk.ru

<b>Адрес:</b>
050012, Казахстан, г. Алматы,
ул. Карасай батыра 1А

📍 <a href="https://maps.google.com">Посмотреть на карте</a>`,
		DisableWebPagePreview: true,
	},
}

// Fails to compile when a topic has no entry.
var _ = [1]struct{}{}[len(entries)-domain.NumTopics]

// Lookup returns the canned response of a topic.
func Lookup(topic domain.Topic) (Entry, bool) {
	if !topic.Valid() {
		return Entry{}, false
	}
	return entries[topic], true
}
