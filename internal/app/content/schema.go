/*
Package content defines the editable site text catalog.

Every fragment the admin console can edit is declared here with the metadata
the console needs to render a friendly editor and to seed default values.
Markdown-formatted fields are stored raw; rendering happens in the browser.
*/
package content

// Input types for console editors.
const (
	InputText     = "text"
	InputTextarea = "textarea"
)

// Field formats. Markdown fields are delivered unrendered.
const (
	FormatPlain    = "plain"
	FormatMarkdown = "markdown"
)

// Field is one editable text fragment.
type Field struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Default   string `json:"default"`
	InputType string `json:"input_type"`
	Format    string `json:"format"`
	HelpText  string `json:"help_text,omitempty"`
}

// Section groups related fields in the console UI.
type Section struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Sections is the full catalog of editable site content.
var Sections = []Section{
	{
		ID:          "navigation",
		Title:       "상단 메뉴",
		Description: "홈페이지 상단 네비게이션 바에 노출되는 문구들입니다.",
		Fields: []Field{
			{Key: "nav_brand_title", Label: "로고 옆 교회 이름", Default: "University Church", InputType: InputText, Format: FormatPlain},
			{Key: "nav_home_label", Label: "메뉴 - Home", Default: "Home", InputType: InputText, Format: FormatPlain},
			{Key: "nav_about_label", Label: "메뉴 - 교회 소개", Default: "교회 소개", InputType: InputText, Format: FormatPlain},
			{Key: "nav_sermons_label", Label: "메뉴 - 설교", Default: "설교", InputType: InputText, Format: FormatPlain},
			{Key: "nav_resources_label", Label: "메뉴 - 자료공유", Default: "자료공유", InputType: InputText, Format: FormatPlain},
			{Key: "nav_messages_label", Label: "메뉴 - 받은 메시지 (목사님만 표시)", Default: "받은 메시지", InputType: InputText, Format: FormatPlain},
			{Key: "nav_login_label", Label: "메뉴 - 관리자 로그인", Default: "관리자 로그인", InputType: InputText, Format: FormatPlain},
			{Key: "nav_youtube_label", Label: "우측 버튼 - 유튜브", Default: "UChurchMD TV", InputType: InputText, Format: FormatPlain},
		},
	},
	{
		ID:          "home",
		Title:       "홈 화면",
		Description: "첫 화면에 크게 보이는 환영 문구와 예배 안내입니다.",
		Fields: []Field{
			{Key: "home_hero_title", Label: "환영 제목", Default: "University Church에 오신 것을 환영합니다", InputType: InputText, Format: FormatPlain},
			{Key: "home_hero_subtitle", Label: "환영 부제목", Default: "메릴랜드 대학촌의 한인 교회", InputType: InputText, Format: FormatPlain},
			{
				Key:       "home_service_times",
				Label:     "예배 시간 안내",
				Default:   "주일 예배: 오전 11시\n수요 예배: 저녁 8시",
				InputType: InputTextarea,
				Format:    FormatMarkdown,
				HelpText:  "줄바꿈과 마크다운 서식을 사용할 수 있습니다.",
			},
			{Key: "home_address", Label: "교회 주소", Default: "College Park, MD", InputType: InputText, Format: FormatPlain},
		},
	},
	{
		ID:          "about",
		Title:       "교회 소개",
		Description: "교회 소개 페이지 본문입니다.",
		Fields: []Field{
			{Key: "about_greeting", Label: "인사말", Default: "저희 교회 홈페이지를 찾아주셔서 감사합니다.", InputType: InputTextarea, Format: FormatMarkdown},
			{Key: "about_vision", Label: "교회 비전", Default: "말씀과 기도로 세워지는 공동체", InputType: InputTextarea, Format: FormatMarkdown},
			{Key: "about_pastor_name", Label: "담임 목사 성함", Default: "", InputType: InputText, Format: FormatPlain},
		},
	},
	{
		ID:          "livechat",
		Title:       "실시간 상담",
		Description: "방문자 채팅 위젯에 노출되는 문구들입니다.",
		Fields: []Field{
			{Key: "chat_widget_title", Label: "채팅 위젯 제목", Default: "목사님과 대화하기", InputType: InputText, Format: FormatPlain},
			{Key: "chat_online_notice", Label: "온라인 안내 문구", Default: "지금 목사님이 온라인입니다. 편하게 말을 걸어주세요.", InputType: InputText, Format: FormatPlain},
			{Key: "chat_offline_notice", Label: "오프라인 안내 문구", Default: "지금은 상담이 어렵습니다. 문의 남기기를 이용해주세요.", InputType: InputText, Format: FormatPlain},
		},
	},
	{
		ID:          "contact",
		Title:       "문의하기",
		Description: "문의 양식 페이지의 안내 문구입니다.",
		Fields: []Field{
			{Key: "contact_intro", Label: "안내 문구", Default: "궁금하신 점을 남겨주시면 확인 후 연락드리겠습니다.", InputType: InputTextarea, Format: FormatPlain},
			{Key: "contact_success", Label: "접수 완료 문구", Default: "메시지가 전달되었습니다. 감사합니다.", InputType: InputText, Format: FormatPlain},
		},
	},
}

// fieldIndex maps field keys to their definitions for quick lookup.
var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]Field {
	idx := make(map[string]Field)
	for _, section := range Sections {
		for _, field := range section.Fields {
			idx[field.Key] = field
		}
	}
	return idx
}

// FieldByKey returns the definition for a content key.
func FieldByKey(key string) (Field, bool) {
	f, ok := fieldIndex[key]
	return f, ok
}

// Defaults returns the default value for every declared field.
func Defaults() map[string]string {
	defaults := make(map[string]string, len(fieldIndex))
	for key, field := range fieldIndex {
		defaults[key] = field.Default
	}
	return defaults
}

// ResolvedField is a field definition joined with its current value.
type ResolvedField struct {
	Field
	Value string `json:"value"`
}

// ResolvedSection is a section whose fields carry current values.
type ResolvedSection struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Fields      []ResolvedField `json:"fields"`
}

// Resolve merges stored values over the schema defaults, preserving the
// section order the console renders in.
func Resolve(stored map[string]string) []ResolvedSection {
	resolved := make([]ResolvedSection, 0, len(Sections))
	for _, section := range Sections {
		rs := ResolvedSection{
			ID:          section.ID,
			Title:       section.Title,
			Description: section.Description,
			Fields:      make([]ResolvedField, 0, len(section.Fields)),
		}
		for _, field := range section.Fields {
			value, ok := stored[field.Key]
			if !ok {
				value = field.Default
			}
			rs.Fields = append(rs.Fields, ResolvedField{Field: field, Value: value})
		}
		resolved = append(resolved, rs)
	}
	return resolved
}
