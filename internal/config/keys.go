package config

// settingNames lists every recognized setting, in canonical file order.
// The serializer emits fields in exactly this order, and the tokenizer
// rejects anything not in this set. Keys are case-sensitive.
var settingNames = [35]string{
	"fps",
	"board_width",
	"board_height",
	"monochrome",
	"cascade",
	"const_level",
	"ghost_tetromino_character",
	"ghost_tetromino_color",
	"top_border_character",
	"left_border_character",
	"bottom_border_character",
	"right_border_character",
	"tl_corner_character",
	"bl_corner_character",
	"br_corner_character",
	"tr_corner_character",
	"border_color",
	"block_character",
	"block_size",
	"mode",
	"move_left",
	"move_right",
	"rotate_clockwise",
	"rotate_anticlockwise",
	"soft_drop",
	"hard_drop",
	"hold",
	"background_color",
	"i_color",
	"j_color",
	"l_color",
	"s_color",
	"z_color",
	"t_color",
	"o_color",
}

// validSettingsHint is appended to UnknownSetting errors.
const validSettingsHint = `Valid settings:
fps, board_width, board_height, monochrome, cascade, const_level, ghost_tetromino_character,
ghost_tetromino_color, top_border_character, left_border_character, bottom_border_character,
right_border_character, tl_corner_character, bl_corner_character, br_corner_character,
tr_corner_character, border_color, block_character, block_size, mode, move_left, move_right,
rotate_clockwise, rotate_anticlockwise, soft_drop, hard_drop, hold, background_color, i_color,
j_color, l_color, s_color, z_color, t_color, o_color`

// isSetting reports whether name is one of the recognized setting names.
func isSetting(name string) bool {
	for _, s := range settingNames {
		if s == name {
			return true
		}
	}
	return false
}
