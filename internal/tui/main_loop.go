package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type addStage int

const (
	addStageNone addStage = iota
	addStageFields
	addStageNotes
)

const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldAddress
	fieldTags
	fieldCount
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	userID   int64

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	items   []models.Person
	idx     int
	loading bool
	syncing bool
	status  string
	errMsg  string
	detail  bool

	editing        bool
	editInputs     []textinput.Model
	editFocus      int
	editSubmitting bool
	editPerson     models.Person

	notesEditing bool
	notesArea    textarea.Model
	notesPerson  models.Person
	notesSaving  bool

	addStage     addStage
	addErr       string
	addInputs    []textinput.Model
	addFocus     int
	addPerson    models.Person
	addNotesArea textarea.Model
	addSaving    bool

	logout bool
}

type listLoadedMsg struct {
	items []models.Person
	err   error
}

type syncDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type updateDoneMsg struct {
	err error
}

type createDoneMsg struct {
	err error
}

type notesSavedMsg struct {
	err error
}

var errUserIDNotSet = errors.New("user id не установлен")
var errClientSideIDNotSet = errors.New("clientSideID не установлен")

func newMainLoopModel(ctx context.Context, services *service.ClientServices, userID int64, buildInfo models.AppBuildInfo) mainLoopModel {
	effectiveUserID := userID
	if effectiveUserID == 0 {
		effectiveUserID = getSessionUserID()
	}
	if effectiveUserID > 0 {
		setSessionUserID(effectiveUserID)
	}

	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		userID:    effectiveUserID,
		buildInfo: buildInfo,
		loading:   true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadItems()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = syncErrorMessage(msg.err)
			return m, nil
		}
		m.status = "Синхронизация завершена"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		m.status = "Контакт удалён"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case updateDoneMsg:
		m.editSubmitting = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка изменения: %v", msg.err)
			return m, nil
		}
		m.editing = false
		m.status = "Контакт обновлён"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case createDoneMsg:
		m.addSaving = false
		if msg.err != nil {
			m.status = "Возникла ошибка"
			m.errMsg = msg.err.Error()
			m.resetAddFlow()
			return m, nil
		}
		m.status = "Контакт добавлен!"
		m.errMsg = ""
		m.resetAddFlow()
		m.loading = true
		return m, m.cmdLoadItems()
	case notesSavedMsg:
		m.notesSaving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка сохранения заметок: %v", msg.err)
			return m, nil
		}
		m.notesEditing = false
		m.status = "Заметки сохранены"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.addStage != addStageNone {
			return m.updateAddFlow(msg)
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		if m.notesEditing {
			return m.updateNotesEditing(msg)
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.quit) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) && m.addStage == addStageNone && !m.editing && !m.notesEditing {
		return m, tea.Quit
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.addStage != addStageNone {
		return m.updateAddFlow(msg)
	}

	if m.editing {
		return m.updateEditing(msg)
	}

	if m.notesEditing {
		return m.updateNotesEditing(msg)
	}

	if m.detail {
		item, ok := m.current()
		if !ok {
			m.detail = false
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			m.detail = false
		case key.Matches(keyMsg, keys.edit):
			m.detail = false
			m.startEdit(item)
			return m, nil
		case key.Matches(keyMsg, keys.notes):
			m.detail = false
			m.startNotesEdit(item)
			return m, nil
		case key.Matches(keyMsg, keys.delete):
			if strings.TrimSpace(item.ClientSideID) == "" {
				m.errMsg = fmt.Sprintf("Ошибка удаления: %v", errClientSideIDNotSet)
				return m, nil
			}
			m.detail = false
			return m, m.cmdDelete(item.ClientSideID)
		case key.Matches(keyMsg, keys.copyPhone):
			if strings.TrimSpace(item.Phone) == "" {
				m.status = "Нечего копировать"
				return m, nil
			}
			if err := clipboard.WriteAll(item.Phone); err != nil {
				m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
				return m, nil
			}
			m.status = "Телефон скопирован"
		case key.Matches(keyMsg, keys.copyEmail):
			if strings.TrimSpace(item.Email) == "" {
				m.status = "Нечего копировать"
				return m, nil
			}
			if err := clipboard.WriteAll(item.Email); err != nil {
				m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
				return m, nil
			}
			m.status = "Почта скопирована"
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.add):
		m.startAddFlow()
		return m, nil
	case key.Matches(keyMsg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Синхронизация..."
		m.errMsg = ""
		return m, m.cmdSync()
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "Нет контактов"
			return m, nil
		}
		m.detail = true
	case key.Matches(keyMsg, keys.edit):
		item, ok := m.current()
		if !ok {
			m.status = "Нет контактов"
			return m, nil
		}
		m.startEdit(item)
		return m, nil
	case key.Matches(keyMsg, keys.notes):
		item, ok := m.current()
		if !ok {
			m.status = "Нет контактов"
			return m, nil
		}
		m.startNotesEdit(item)
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.current()
		if !ok {
			m.status = "Нет контактов"
			return m, nil
		}
		if strings.TrimSpace(item.ClientSideID) == "" {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", errClientSideIDNotSet)
			return m, nil
		}
		return m, m.cmdDelete(item.ClientSideID)
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

// ── add flow ────────────────────────────────────────────────────────────────

func (m *mainLoopModel) startAddFlow() {
	m.addStage = addStageFields
	m.addErr = ""
	m.addSaving = false
	m.addPerson = models.Person{}
	m.addInputs = newPersonInputs(models.Person{})
	m.addFocus = 0
}

func (m *mainLoopModel) resetAddFlow() {
	m.addStage = addStageNone
	m.addErr = ""
	m.addSaving = false
	m.addPerson = models.Person{}
	m.addInputs = nil
	m.addFocus = 0
}

func (m mainLoopModel) updateAddFlow(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.addStage {
	case addStageFields:
		return m.updateAddFields(msg)
	case addStageNotes:
		return m.updateAddNotes(msg)
	default:
		return m, nil
	}
}

func (m mainLoopModel) updateAddFields(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.resetAddFlow()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus + 1) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus - 1 + len(m.addInputs)) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			person, err := collectPerson(m.addInputs)
			if err != nil {
				m.addErr = err.Error()
				return m, nil
			}

			m.addPerson = person
			m.addErr = ""
			m.addStage = addStageNotes
			m.addNotesArea = newNotesArea("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateAddNotes(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.resetAddFlow()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.addSaving {
				return m, nil
			}

			person := m.addPerson
			person.Notes = models.NewNotes(strings.TrimSpace(m.addNotesArea.Value()))

			m.addErr = ""
			m.addSaving = true
			return m, m.cmdCreate(person)
		}
	}

	var cmd tea.Cmd
	m.addNotesArea, cmd = m.addNotesArea.Update(msg)
	return m, cmd
}

// ── edit flow ───────────────────────────────────────────────────────────────

func (m *mainLoopModel) startEdit(item models.Person) {
	m.editInputs = newPersonInputs(item)
	m.editFocus = 0
	m.editSubmitting = false
	m.editPerson = item
	m.editing = true
	m.errMsg = ""
}

func (m mainLoopModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.editing = false
			m.editSubmitting = false
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.editInputs[m.editFocus].Blur()
			m.editFocus = (m.editFocus + 1) % len(m.editInputs)
			m.editInputs[m.editFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.editInputs[m.editFocus].Blur()
			m.editFocus = (m.editFocus - 1 + len(m.editInputs)) % len(m.editInputs)
			m.editInputs[m.editFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.editSubmitting {
				return m, nil
			}

			edited, err := collectPerson(m.editInputs)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			person := m.editPerson
			person.Name = edited.Name
			person.Phone = edited.Phone
			person.Email = edited.Email
			person.Address = edited.Address
			person.Tags = edited.Tags

			m.errMsg = ""
			m.editSubmitting = true
			return m, m.cmdUpdate(person)
		}
	}

	var cmd tea.Cmd
	m.editInputs[m.editFocus], cmd = m.editInputs[m.editFocus].Update(msg)
	return m, cmd
}

// ── notes flow ──────────────────────────────────────────────────────────────

func (m *mainLoopModel) startNotesEdit(item models.Person) {
	m.notesArea = newNotesArea(item.Notes.Text)
	m.notesPerson = item
	m.notesSaving = false
	m.notesEditing = true
	m.errMsg = ""
}

func (m mainLoopModel) updateNotesEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.notesEditing = false
			m.notesSaving = false
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.notesSaving {
				return m, nil
			}

			person := m.notesPerson
			// пустой текст означает удаление заметок
			person.Notes = models.NewNotes(strings.TrimSpace(m.notesArea.Value()))

			m.notesSaving = true
			return m, m.cmdSaveNotes(person)
		}
	}

	var cmd tea.Cmd
	m.notesArea, cmd = m.notesArea.Update(msg)
	return m, cmd
}

// ── view ────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.addStage {
	case addStageFields:
		return m.viewAddFields()
	case addStageNotes:
		return m.viewAddNotes()
	}

	if m.editing {
		out := viewPersonForm(m.editInputs)
		if m.editSubmitting {
			out += "Действие  │ [Сохранение...]\n"
		} else {
			out += "Действие  │ [Сохранить]\n"
		}
		if m.errMsg != "" {
			out += "Ошибка    │ " + m.errMsg + "\n"
		}
		return renderPage("ИЗМЕНЕНИЕ КОНТАКТА", strings.TrimRight(out, "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
	}

	if m.notesEditing {
		out := "[ ЗАМЕТКИ: " + m.notesPerson.Name + " ]\n"
		out += m.notesArea.View()
		if m.notesSaving {
			out += "\nСохранение...\n"
		}
		if m.errMsg != "" {
			out += "\nОшибка: " + m.errMsg + "\n"
		}
		return renderPage("ЗАМЕТКИ", strings.TrimRight(out, "\n"), "enter: новая строка │ ctrl+s: сохранить │ esc: отмена")
	}

	if m.detail {
		item, ok := m.current()
		if !ok {
			return renderPage("ПРОСМОТР КОНТАКТА", "Контакт не найден", "esc: назад")
		}

		title, out, hotKeys := viewDetail(item)
		return renderPage(title, strings.TrimRight(out, "\n"), hotKeys)
	}

	out := ""

	if m.loading {
		out += "Загрузка списка...\n"
		return renderPage("КОНТАКТЫ", strings.TrimRight(out, "\n"), listHotKeys)
	}

	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}

	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}

	if len(m.items) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Контактов нет\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "ID   │ Имя                      │ Телефон         │ Почта\n"
		out += "─────┼──────────────────────────┼─────────────────┼────────────────\n"
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-15s │ %s\n",
				cursor,
				i+1,
				fitText(item.Name, 24),
				fitText(valueOrDash(item.Phone), 15),
				valueOrDash(item.Email),
			)
		}
	}

	return renderPage("КОНТАКТЫ", strings.TrimRight(out, "\n"), listHotKeys)
}

const listHotKeys = "a: добавить │ s: синхр. │ enter: открыть │ e: изм. │ n: заметки │ ctrl+d: уд. │ v: о программе │ l: выход из аккаунта"

func (m mainLoopModel) viewAddFields() string {
	out := viewPersonForm(m.addInputs)
	if m.addErr != "" {
		out += "\nОшибка: " + m.addErr + "\n"
	}

	return renderPage("НОВЫЙ КОНТАКТ", strings.TrimRight(out, "\n"), "tab: след. поле │ shift+tab: пред. поле │ enter: далее │ esc: отмена")
}

func (m mainLoopModel) viewAddNotes() string {
	out := "[ ЗАМЕТКИ ]\n"
	out += m.addNotesArea.View()
	if m.addErr != "" {
		out += "\nОшибка: " + m.addErr + "\n"
	}
	if m.addSaving {
		out += "\nСохранение...\n"
	}

	return renderPage("НОВЫЙ КОНТАКТ: ЗАМЕТКИ", strings.TrimRight(out, "\n"), "enter: новая строка │ ctrl+s: сохранить │ esc: отмена")
}

func viewPersonForm(inputs []textinput.Model) string {
	out := "Поле      │ Значение\n"
	out += "──────────┼──────────────────────────────────────────\n"
	out += "Имя       │ [" + inputs[fieldName].View() + "]\n"
	out += "Телефон   │ [" + inputs[fieldPhone].View() + "]\n"
	out += "Почта     │ [" + inputs[fieldEmail].View() + "]\n"
	out += "Адрес     │ [" + inputs[fieldAddress].View() + "]\n"
	out += "Теги      │ [" + inputs[fieldTags].View() + "]\n"
	return out
}

func viewDetail(item models.Person) (title, body, hotKeys string) {
	var b strings.Builder

	title = "КОНТАКТ: " + item.Name

	b.WriteString("[ ОСНОВНОЕ ]\n")
	b.WriteString("Имя       : " + item.Name + "\n")
	b.WriteString("Телефон   : " + valueOrDash(item.Phone) + "\n")
	b.WriteString("Почта     : " + valueOrDash(item.Email) + "\n")
	b.WriteString("Адрес     : " + valueOrDash(item.Address) + "\n")
	b.WriteString("Теги      : " + valueOrDash(strings.Join(item.Tags, ", ")) + "\n")
	if item.Income > 0 {
		b.WriteString(fmt.Sprintf("Доход     : %d\n", item.Income))
	}
	if item.Age > 0 {
		b.WriteString(fmt.Sprintf("Возраст   : %d\n", item.Age))
	}

	b.WriteString("\n[ ЗАМЕТКИ ]\n")
	if !item.Notes.IsEmpty() {
		b.WriteString(item.Notes.Text + "\n")
	} else {
		b.WriteString("(пусто)\n")
	}

	hotKeys = "e: изменить │ n: заметки │ c: коп. телефон │ u: коп. почту │ ctrl+d: удалить │ esc: назад"
	return title, b.String(), hotKeys
}

// ── helpers ─────────────────────────────────────────────────────────────────

func newPersonInputs(item models.Person) []textinput.Model {
	name := textinput.New()
	name.Placeholder = "Имя"
	name.SetValue(item.Name)
	name.Width = 40
	name.Focus()

	phone := textinput.New()
	phone.Placeholder = "Телефон"
	phone.SetValue(item.Phone)
	phone.Width = 40

	email := textinput.New()
	email.Placeholder = "Почта"
	email.SetValue(item.Email)
	email.Width = 40

	address := textinput.New()
	address.Placeholder = "Адрес"
	address.SetValue(item.Address)
	address.Width = 40

	tags := textinput.New()
	tags.Placeholder = "Теги через запятую"
	tags.SetValue(strings.Join(item.Tags, ", "))
	tags.Width = 40

	inputs := make([]textinput.Model, fieldCount)
	inputs[fieldName] = name
	inputs[fieldPhone] = phone
	inputs[fieldEmail] = email
	inputs[fieldAddress] = address
	inputs[fieldTags] = tags
	return inputs
}

func newNotesArea(text string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Введите заметки (опционально)"
	ta.SetWidth(54)
	ta.SetHeight(4)
	ta.SetValue(text)
	ta.Focus()
	return ta
}

func collectPerson(inputs []textinput.Model) (models.Person, error) {
	name := strings.TrimSpace(inputs[fieldName].Value())
	if name == "" {
		return models.Person{}, fmt.Errorf("имя обязательно")
	}

	return models.Person{
		Name:    name,
		Phone:   strings.TrimSpace(inputs[fieldPhone].Value()),
		Email:   strings.TrimSpace(inputs[fieldEmail].Value()),
		Address: strings.TrimSpace(inputs[fieldAddress].Value()),
		Tags:    parseTags(inputs[fieldTags].Value()),
	}, nil
}

func parseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func (m mainLoopModel) current() (models.Person, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Person{}, false
	}
	return m.items[m.idx], true
}

// ── commands ────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	svc := m.services.PersonService

	return func() tea.Msg {
		items, err := svc.GetAll(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService

	return func() tea.Msg {
		userID := m.activeUserID()
		if userID <= 0 {
			return syncDoneMsg{err: errUserIDNotSet}
		}
		err := svc.FullSync(ctx, userID)
		return syncDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(clientSideID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PersonService

	return func() tea.Msg {
		if strings.TrimSpace(clientSideID) == "" {
			return deleteDoneMsg{err: errClientSideIDNotSet}
		}
		err := svc.Delete(ctx, clientSideID)
		return deleteDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdate(person models.Person) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PersonService

	return func() tea.Msg {
		err := svc.Update(ctx, person)
		return updateDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdCreate(person models.Person) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PersonService

	return func() tea.Msg {
		person.UserID = m.activeUserID()
		_, err := svc.Create(ctx, person)
		return createDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdSaveNotes(person models.Person) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PersonService

	return func() tea.Msg {
		err := svc.Update(ctx, person)
		return notesSavedMsg{err: err}
	}
}

func (m mainLoopModel) activeUserID() int64 {
	if sid := getSessionUserID(); sid > 0 {
		return sid
	}
	if m.userID > 0 {
		return m.userID
	}
	return 0
}

func syncErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	human := humanizeServerUnavailableError(err)
	if human != err.Error() {
		return "синхронизация не выполнена. " + human
	}

	return fmt.Sprintf("Ошибка синхронизации: %v", err)
}
