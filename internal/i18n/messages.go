package i18n

var messagesEN = map[string]string{
	"message.record_not_found":             "Record not found.",
	"message.element_successfully_edited":  "Changes saved.",
	"message.element_successfully_deleted": "Record deleted.",
	"message.user_successfully_add":        "Account created. You can log in now.",
	"message.user_login_exist":             "This login is already taken.",
	"message.page_successfully_add":        "Page added.",
	"message.page_slug_exist":              "A page with this address already exists.",
	"message.photo_successfully_added":     "Photo added.",
	"message.photo_successfully_deleted":   "Photo deleted.",
	"message.comment_successfully_add":     "Comment added.",

	"error_403":     "You do not have access to this page.",
	"error_404":     "Page not found.",
	"error_500":     "Something went wrong. Please try again later.",
	"error_default": "An error occurred.",

	"auth.bad_credentials":   "Invalid login or password.",
	"auth.too_many_attempts": "Too many attempts, try again in a minute.",
	"auth.logged_out":        "You have been logged out.",

	"validation.required":   "This value should not be blank.",
	"validation.min":        "This value is too short. It should have %v characters or more.",
	"validation.max":        "This value is too long. It should have %v characters or less.",
	"validation.email":      "This value is not a valid email address.",
	"validation.eqfield":    "The password fields must match.",
	"validation.slug":       "Use lowercase letters, digits and dashes only.",
	"validation.oneof":      "The selected choice is invalid.",
	"validation.gte":        "This value should be %v or more.",
	"validation.invalid":    "This value is not valid.",
	"validation.image_size": "The file is too large. Allowed maximum size is %v kB.",
	"validation.image_type": "The mime type of the file is invalid. Allowed: png, jpeg.",

	"label.login":           "Login",
	"label.password":        "Password",
	"label.second_password": "Repeat password",
	"label.name":            "Name",
	"label.email":           "E-mail",
	"label.role":            "Role",
	"label.title":           "Title",
	"label.content":         "Content",
	"label.slug":            "Address",
	"label.in_menu":         "Show in menu",
	"label.position":        "Menu position",
	"label.photo":           "Photo",
	"label.comment":         "Comment",
	"label.author":          "Author",
	"label.date":            "Date",

	"action.save":    "Save",
	"action.delete":  "Delete",
	"action.edit":    "Edit",
	"action.add":     "Add",
	"action.login":   "Log in",
	"action.logout":  "Log out",
	"action.back":    "Back",
	"action.confirm": "Are you sure you want to delete this record?",

	"nav.home":      "Home",
	"nav.portfolio": "Portfolio",
	"nav.comments":  "Comments",
	"nav.contact":   "Contact",
	"nav.register":  "Sign up",
	"nav.admin":     "Admin",
	"nav.account":   "My account",
	"nav.pages":     "Pages",
	"nav.users":     "Users",

	"title.home":      "Welcome",
	"title.login":     "Log in",
	"title.logout":    "Logged out",
	"title.user_add":  "Create account",
	"title.user_view": "My account",
	"title.user_edit": "Edit user",
	"title.users":     "Users",
	"title.pages":     "Pages",
	"title.page_add":  "Add page",
	"title.page_edit": "Edit page",
	"title.photo_add": "Add photo",
	"title.comments":  "Comments",
	"title.comment":   "Add comment",
	"title.delete":    "Delete",
	"title.contact":   "Contact",
	"title.register":  "Join",
	"title.road":      "Road to nowhere",
	"title.admin":     "Dashboard",

	"text.contact":     "Write to me, I will answer as soon as I can.",
	"text.register":    "Create an account to leave comments under the portfolio.",
	"text.road":        "Nothing to see here yet.",
	"text.no_photos":   "No photos yet.",
	"text.no_comments": "No comments yet.",
	"text.page_of":     "Page %v of %v",
	"text.disk_usage":  "Media storage: %v MB used of %v MB (%v%%)",
	"text.counts":      "Users: %v, pages: %v, photos: %v, comments: %v",
	"text.role_admin":  "Administrator",
	"text.role_user":   "User",
}

var messagesPL = map[string]string{
	"message.record_not_found":             "Nie znaleziono rekordu.",
	"message.element_successfully_edited":  "Zmiany zostały zapisane.",
	"message.element_successfully_deleted": "Rekord został usunięty.",
	"message.user_successfully_add":        "Konto zostało utworzone. Możesz się zalogować.",
	"message.user_login_exist":             "Ten login jest już zajęty.",
	"message.page_successfully_add":        "Strona została dodana.",
	"message.page_slug_exist":              "Strona o tym adresie już istnieje.",
	"message.photo_successfully_added":     "Zdjęcie zostało dodane.",
	"message.photo_successfully_deleted":   "Zdjęcie zostało usunięte.",
	"message.comment_successfully_add":     "Komentarz został dodany.",

	"error_403":     "Nie masz dostępu do tej strony.",
	"error_404":     "Nie znaleziono strony.",
	"error_500":     "Coś poszło nie tak. Spróbuj ponownie później.",
	"error_default": "Wystąpił błąd.",

	"auth.bad_credentials":   "Nieprawidłowy login lub hasło.",
	"auth.too_many_attempts": "Zbyt wiele prób, spróbuj ponownie za minutę.",
	"auth.logged_out":        "Zostałeś wylogowany.",

	"validation.required":   "Ta wartość nie powinna być pusta.",
	"validation.min":        "Ta wartość jest zbyt krótka. Powinna mieć %v lub więcej znaków.",
	"validation.max":        "Ta wartość jest zbyt długa. Powinna mieć %v lub mniej znaków.",
	"validation.email":      "Ta wartość nie jest prawidłowym adresem email.",
	"validation.eqfield":    "Hasła muszą być takie same.",
	"validation.slug":       "Używaj tylko małych liter, cyfr i myślników.",
	"validation.oneof":      "Wybrana wartość jest nieprawidłowa.",
	"validation.gte":        "Ta wartość powinna wynosić %v lub więcej.",
	"validation.invalid":    "Ta wartość jest nieprawidłowa.",
	"validation.image_size": "Plik jest za duży. Maksymalny rozmiar to %v kB.",
	"validation.image_type": "Nieprawidłowy typ pliku. Dozwolone: png, jpeg.",

	"label.login":           "Login",
	"label.password":        "Hasło",
	"label.second_password": "Powtórz hasło",
	"label.name":            "Imię",
	"label.email":           "E-mail",
	"label.role":            "Rola",
	"label.title":           "Tytuł",
	"label.content":         "Treść",
	"label.slug":            "Adres",
	"label.in_menu":         "Pokaż w menu",
	"label.position":        "Pozycja w menu",
	"label.photo":           "Zdjęcie",
	"label.comment":         "Komentarz",
	"label.author":          "Autor",
	"label.date":            "Data",

	"action.save":    "Zapisz",
	"action.delete":  "Usuń",
	"action.edit":    "Edytuj",
	"action.add":     "Dodaj",
	"action.login":   "Zaloguj",
	"action.logout":  "Wyloguj",
	"action.back":    "Wróć",
	"action.confirm": "Czy na pewno chcesz usunąć ten rekord?",

	"nav.home":      "Strona główna",
	"nav.portfolio": "Portfolio",
	"nav.comments":  "Komentarze",
	"nav.contact":   "Kontakt",
	"nav.register":  "Rejestracja",
	"nav.admin":     "Administracja",
	"nav.account":   "Moje konto",
	"nav.pages":     "Strony",
	"nav.users":     "Użytkownicy",

	"title.home":      "Witaj",
	"title.login":     "Logowanie",
	"title.logout":    "Wylogowano",
	"title.user_add":  "Załóż konto",
	"title.user_view": "Moje konto",
	"title.user_edit": "Edycja użytkownika",
	"title.users":     "Użytkownicy",
	"title.pages":     "Strony",
	"title.page_add":  "Dodaj stronę",
	"title.page_edit": "Edycja strony",
	"title.photo_add": "Dodaj zdjęcie",
	"title.comments":  "Komentarze",
	"title.comment":   "Dodaj komentarz",
	"title.delete":    "Usuwanie",
	"title.contact":   "Kontakt",
	"title.register":  "Dołącz",
	"title.road":      "Droga donikąd",
	"title.admin":     "Panel",

	"text.contact":     "Napisz do mnie, odpowiem najszybciej jak to możliwe.",
	"text.register":    "Załóż konto, aby komentować portfolio.",
	"text.road":        "Nic tu jeszcze nie ma.",
	"text.no_photos":   "Brak zdjęć.",
	"text.no_comments": "Brak komentarzy.",
	"text.page_of":     "Strona %v z %v",
	"text.disk_usage":  "Miejsce na media: użyto %v MB z %v MB (%v%%)",
	"text.counts":      "Użytkownicy: %v, strony: %v, zdjęcia: %v, komentarze: %v",
	"text.role_admin":  "Administrator",
	"text.role_user":   "Użytkownik",
}
