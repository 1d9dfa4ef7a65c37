package main

import (
	"github.com/minios-linux/i18nstr/builder"
	"github.com/minios-linux/i18nstr/pofile"
)

// Messages printed by the command. Bodies are msgids of the embedded
// i18n catalog.

func msg(body string, build func(builder.ArgStage) builder.ArgStage) builder.I18n {
	return builder.Func(func(b builder.TemplateStage) builder.Finished {
		return build(b.Template(body)).Finish()
	})
}

func noArgs(s builder.ArgStage) builder.ArgStage { return s }

func msgInvalidInput() builder.I18n {
	return msg("Input is not a valid encoded string", noArgs)
}

func msgTranslatingInto(lang string) builder.I18n {
	return msg("Translating into {0}", func(s builder.ArgStage) builder.ArgStage {
		return s.ArgString(lang)
	})
}

func msgWrote(path string) builder.I18n {
	return msg("Wrote {0}", func(s builder.ArgStage) builder.ArgStage {
		return s.ArgString(path)
	})
}

func msgWroteMessages(n int, path string) builder.I18n {
	return msg("Wrote {0} messages to {1}", func(s builder.ArgStage) builder.ArgStage {
		return s.ArgValue(n).ArgString(path)
	})
}

func msgScannedFiles(n int) builder.I18n {
	return msg("Found templates in {0} files", func(s builder.ArgStage) builder.ArgStage {
		return s.ArgValue(n)
	})
}

func msgSkippedMalformed(ref string) builder.I18n {
	return msg("Skipping malformed template at {0}", func(s builder.ArgStage) builder.ArgStage {
		return s.ArgString(ref)
	})
}

func msgStats(st pofile.Stats) builder.I18n {
	return msg("{0} of {1} messages translated ({2}%), {3} fuzzy", func(s builder.ArgStage) builder.ArgStage {
		return s.ArgValue(st.Translated).ArgValue(st.Total).ArgValue(st.Percent()).ArgValue(st.Fuzzy)
	})
}

func msgProblemsFound(n int) builder.I18n {
	return msg("{0} entries need fixing", func(s builder.ArgStage) builder.ArgStage {
		return s.ArgValue(n)
	})
}

func msgCatalogOK(path string) builder.I18n {
	return msg("{0}: placeholders match", func(s builder.ArgStage) builder.ArgStage {
		return s.ArgString(path)
	})
}

func msgProblem(p pofile.Problem) builder.I18n {
	switch p.Kind {
	case pofile.Untranslated:
		return msg("untranslated: {0}", func(s builder.ArgStage) builder.ArgStage {
			return s.ArgString(p.Entry.MsgID)
		})
	case pofile.Fuzzy:
		return msg("fuzzy: {0}", func(s builder.ArgStage) builder.ArgStage {
			return s.ArgString(p.Entry.MsgID)
		})
	}
	return msg("placeholder mismatch: {0} (missing {1}, extra {2})", func(s builder.ArgStage) builder.ArgStage {
		return s.ArgString(p.Entry.MsgID).ArgValue(p.Missing).ArgValue(p.Extra)
	})
}
